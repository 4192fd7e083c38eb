package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.NoError(t, errs.Err())

	errs.Add("name", "is required")
	errs.Add("phone", "invalid")

	require.Error(t, errs.Err())
	assert.Equal(t, "name: is required; phone: invalid", errs.Error())
	assert.Equal(t, map[string]string{"name": "is required", "phone": "invalid"}, errs.ToMap())

	var target ValidationErrors
	assert.ErrorAs(t, errs.Err(), &target)
	assert.Len(t, target, 2)
}

func TestStruct(t *testing.T) {
	type request struct {
		Name   string `json:"name" validate:"required"`
		Status string `json:"status" validate:"oneof=Present Absent"`
		Hours  int    `json:"hours" validate:"gte=0"`
	}

	assert.Empty(t, Struct(request{Name: "Ravi", Status: "Present"}))

	got := Struct(request{Status: "Late", Hours: -1}).ToMap()
	assert.Equal(t, "is required", got["name"])
	assert.Equal(t, "must be one of: Present Absent", got["status"])
	assert.Equal(t, "must be at least 0", got["hours"])
}
