package feed

import (
	"fmt"
	"testing"

	"github.com/dmitrijs2005/volunteer/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messages(n int) []models.Message {
	out := make([]models.Message, n)
	for i := range out {
		out[i] = models.Message{Type: models.KindReport, Title: fmt.Sprintf("m%d", i)}
	}
	return out
}

func titles(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Title
	}
	return out
}

func TestProject_ShortLogUnchanged(t *testing.T) {
	for _, n := range []int{0, 1, 9, 10} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			log := messages(n)
			got := Project(log)
			require.Len(t, got, n)
			for i := range log {
				assert.Equal(t, log[i], got[i].Message)
			}
		})
	}
}

func TestProject_LongLogKeepsMostRecentOldestFirst(t *testing.T) {
	got := Project(messages(11))
	assert.Equal(t, []string{"m1", "m2", "m3", "m4", "m5", "m6", "m7", "m8", "m9", "m10"}, titles(got))

	got = Project(messages(100))
	require.Len(t, got, Size)
	assert.Equal(t, "m90", got[0].Title)
	assert.Equal(t, "m99", got[Size-1].Title)
}

func TestProject_IsIdempotentAndPure(t *testing.T) {
	log := messages(15)
	before := append([]models.Message(nil), log...)

	a := Project(log)
	b := Project(log)
	assert.Equal(t, a, b)
	assert.Equal(t, before, log)
}

func TestProject_NilLog(t *testing.T) {
	got := Project(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestIcon(t *testing.T) {
	tests := map[models.MessageKind]string{
		models.KindEvent:  IconEvent,
		models.KindReport: IconReport,
		models.KindSystem: IconSystem,
		models.KindOther:  IconDefault,
		"":                IconDefault,
		"chat":            IconDefault,
	}
	for kind, want := range tests {
		assert.Equal(t, want, Icon(kind), kind)
	}
}

func TestProject_AssignsIcons(t *testing.T) {
	log := []models.Message{
		{Type: models.KindSystem},
		{Type: models.KindEvent},
		{Type: "unknown"},
	}
	got := Project(log)
	assert.Equal(t, IconSystem, got[0].Icon)
	assert.Equal(t, IconEvent, got[1].Icon)
	assert.Equal(t, IconDefault, got[2].Icon)
}
