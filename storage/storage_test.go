package storage_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Dosada05/tournament-scheduler/storage"
)

func TestScheduleKey(t *testing.T) {
	assert.Equal(t, "schedules/sommer-cup-2024.json", storage.ScheduleKey("Sommer Cup 2024"))
	assert.Equal(t, "schedules/schedule.json", storage.ScheduleKey("   "))
}

func TestPublicURL(t *testing.T) {
	base, err := url.Parse("https://cdn.example.com/assets/")
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/assets/schedules/a.json", storage.PublicURL(base, "schedules/a.json"))
	assert.Equal(t, "https://cdn.example.com/assets/schedules/a.json", storage.PublicURL(base, "/schedules/a.json"))
	assert.Empty(t, storage.PublicURL(base, ""))
	assert.Empty(t, storage.PublicURL(nil, "a.json"))
}
