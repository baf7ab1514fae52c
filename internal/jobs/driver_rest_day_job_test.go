package jobs_test

import (
	"testing"
	"time"

	"github.com/Pandalivraison/ALOUETTE/internal/jobs"

	"github.com/stretchr/testify/assert"
)

func Test_FrenchWeekday(t *testing.T) {
	assert.Equal(t, "Lundi", jobs.FrenchWeekday(time.Monday))
	assert.Equal(t, "Dimanche", jobs.FrenchWeekday(time.Sunday))
	assert.Equal(t, "Samedi", jobs.FrenchWeekday(time.Saturday))
}
