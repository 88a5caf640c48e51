package store

import (
	"time"

	"fruitpie-jobboard/models"
)

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) models.Date {
	return models.NewDate(y, m, d)
}

// SampleJobs returns a fresh copy of the postings a new board starts with.
func SampleJobs() []models.JobPost {
	return []models.JobPost{
		{
			PostedDate:   day(2023, time.October, 26),
			Status:       "Hiring",
			Title:        "Software Engineer",
			Company:      "FruitPie Tech",
			Description:  "Developing the core fruit sorting algorithms.",
			Requirements: "Python, FastAPI, 3+ years experience",
			Location:     "Apple Valley, CA",
			Salary:       strPtr("$100,000 - $120,000"),
			Contact:      "hr@fruitpietech.com",
			Notes:        strPtr("Great team, lots of free fruit!"),
		},
		{
			PostedDate:   day(2023, time.November, 5),
			Status:       "Hiring",
			Title:        "UX Designer",
			Company:      "OrangeBloom Inc.",
			Description:  "Designing intuitive interfaces for our citrus marketplace.",
			Requirements: "Figma, Adobe XD, User Research",
			Location:     "Orange County, FL",
			Salary:       strPtr("$90,000 - $110,000"),
			Contact:      "careers@orangebloom.com",
			Notes:        strPtr("Sunny office environment."),
		},
		{
			PostedDate:   day(2023, time.November, 15),
			Status:       "Closed",
			Title:        "Data Analyst",
			Company:      "BerryMetrics Co.",
			Description:  "Analyzing sales data for berry-based products.",
			Requirements: "SQL, Python, Tableau",
			Location:     "Remote (US)",
			Contact:      "jobs@berrymetrics.com",
			Notes:        strPtr("Position filled quickly."),
		},
	}
}
