package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateJSON(t *testing.T) {
	job := JobPost{PostedDate: NewDate(2023, time.November, 15)}

	body, err := json.Marshal(job)
	require.NoError(t, err)
	assert.Contains(t, string(body), `"posted_date":"2023-11-15"`)

	var back JobPost
	require.NoError(t, json.Unmarshal(body, &back))
	assert.Equal(t, job.PostedDate, back.PostedDate)

	var d Date
	assert.Error(t, json.Unmarshal([]byte(`"2023-11-15T00:00:00Z"`), &d))
	assert.Error(t, json.Unmarshal([]byte(`20231115`), &d))
}

func TestDateScan(t *testing.T) {
	want := NewDate(2023, time.October, 26)

	inputs := []any{
		time.Date(2023, time.October, 26, 0, 0, 0, 0, time.UTC),
		"2023-10-26",
		"2023-10-26 00:00:00+00:00",
		[]byte("2023-10-26T00:00:00Z"),
	}
	for _, in := range inputs {
		var d Date
		require.NoError(t, d.Scan(in), "%v", in)
		assert.Equal(t, want, d)
	}

	var d Date
	assert.Error(t, d.Scan(42))
	assert.Error(t, d.Scan("yesterday"))
}

func TestDateValue(t *testing.T) {
	v, err := NewDate(2023, time.November, 5).Value()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, time.November, 5, 0, 0, 0, 0, time.UTC), v)
	assert.Equal(t, "date", Date{}.GormDataType())
}
