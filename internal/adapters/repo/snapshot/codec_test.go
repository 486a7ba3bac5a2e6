package snapshot

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marquito38/meow-macros/internal/domain"
)

const legacyFixture = `{
  "history": {
    "2026-03-14": [
      {"id": 1773480000000, "name": "Banana", "weight": 150, "measure": "g",
       "c": 34.5, "p": 1.5, "f": 0.45, "fib": 3.9, "category": "Breakfast"}
    ]
  },
  "fitnessHistory": {
    "2026-03-14": [
      {"id": 1773490000000, "routine": "A", "duration": 45, "calories": 270,
       "exercises": {"DB Incline Bench": [
         {"weight": "100", "reps": "8", "difficulty": "😼"},
         {"weight": 90, "reps": 10, "difficulty": "🙀"},
         {"weight": "", "reps": 0}
       ]}}
    ]
  },
  "library": [
    {"id": "3", "name": "Banana", "carbs": 23, "protein": 1, "fat": 0.3, "fiber": 2.6,
     "measure": "g", "lastUsed": 1773480000000, "lastAmount": 150},
    {"id": "4", "name": "Whole Egg", "carbs": 0.6, "protein": 6, "fat": 5, "fiber": 0, "measure": "unit"}
  ]
}`

func TestDecodeLegacyJSON(t *testing.T) {
	t.Parallel()

	state, err := Decode([]byte(legacyFixture), domain.StarterCatalog())
	require.NoError(t, err)

	entries := state.History["2026-03-14"]
	require.Len(t, entries, 1)
	assert.Equal(t, domain.LogEntry{
		ID:        "1773480000000",
		Name:      "Banana",
		Amount:    150,
		Unit:      domain.UnitMass,
		Category:  "Breakfast",
		Nutrients: domain.Nutrients{Carbs: 34.5, Protein: 1.5, Fat: 0.45, Fiber: 3.9},
	}, entries[0])

	sessions := state.FitnessHistory["2026-03-14"]
	require.Len(t, sessions, 1)
	assert.Equal(t, "1773490000000", sessions[0].ID)
	assert.Equal(t, 270, sessions[0].CaloriesBurned)
	assert.Equal(t, []domain.Set{
		{Weight: 100, Reps: 8, Difficulty: domain.DifficultyNormal},
		{Weight: 90, Reps: 10, Difficulty: domain.DifficultyHard},
		{Weight: 0, Reps: 0, Difficulty: domain.DifficultyNormal},
	}, sessions[0].Exercises["DB Incline Bench"])

	require.Len(t, state.Library, 2)
	banana, ok := state.Library.Lookup("Banana")
	require.True(t, ok)
	assert.Equal(t, time.UnixMilli(1773480000000).UTC(), banana.LastUsedAt)
	assert.Equal(t, 150.0, banana.LastLoggedAmount)
	egg, _ := state.Library.Lookup("Whole Egg")
	assert.Equal(t, domain.UnitCount, egg.Unit)
	assert.True(t, egg.LastUsedAt.IsZero())

	assert.NotNil(t, state.Settings)
}

func TestDecodeLegacyMissingCollectionsUsesDefaults(t *testing.T) {
	t.Parallel()

	state, err := Decode([]byte(`{"history": {}}`), domain.StarterCatalog())
	require.NoError(t, err)

	assert.Len(t, state.Library, 10)
	assert.NotNil(t, state.FitnessHistory)
}

func TestDecodeRejectsCorruptPayloads(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		payload string
	}{
		{name: "broken json", payload: `{"history": [`},
		{name: "wrong json type", payload: `{"library": {"a": 1}}`},
		{name: "broken toml", payload: "version = \n"},
		{name: "future version", payload: "version = 99\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode([]byte(tc.payload), domain.StarterCatalog())
			require.ErrorIs(t, err, domain.ErrCorruptState)
		})
	}
}

func TestDecodeEmptyPayloadIsFreshState(t *testing.T) {
	t.Parallel()

	state, err := Decode([]byte("  \n"), domain.StarterCatalog())
	require.NoError(t, err)
	assert.Equal(t, domain.NewState(domain.StarterCatalog()), state)
}

func TestDecodeRepairsMalformedRecords(t *testing.T) {
	t.Parallel()

	payload := `version = 1

[[library]]
id = "x"
name = "Mystery"
unit = "oz"
carbs = -4.0
protein = 2.0
fat = 1.0
fiber = 0.0
last_used_at = "yesterday"

[[history."not-a-day"]]
id = "lost"
name = "Lost"
amount = 1.0
unit = "g"
carbs = 0.0
protein = 0.0
fat = 0.0
fiber = 0.0
`

	state, err := Decode([]byte(payload), domain.StarterCatalog())
	require.NoError(t, err)

	require.Len(t, state.Library, 1)
	assert.Equal(t, domain.UnitMass, state.Library[0].Unit)
	assert.Equal(t, 0.0, state.Library[0].Nutrients.Carbs)
	assert.Equal(t, 2.0, state.Library[0].Nutrients.Protein)
	assert.True(t, state.Library[0].LastUsedAt.IsZero())
	assert.Empty(t, state.History)
}

func TestEncodeProducesVersionedTOML(t *testing.T) {
	t.Parallel()

	data, err := Encode(domain.NewState(domain.StarterCatalog()))
	require.NoError(t, err)

	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "[[library]]")
	assert.NotContains(t, string(data), "last_used_at", "never-used entries carry no timestamp")
}

func TestEncodeLegacyRoundTrip(t *testing.T) {
	t.Parallel()

	want := populatedState(t)

	data, err := EncodeLegacy(want)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Contains(t, raw, "fitnessHistory")

	got, err := Decode(data, domain.StarterCatalog())
	require.NoError(t, err)

	assert.Equal(t, want.History, got.History)
	assert.Equal(t, want.FitnessHistory, got.FitnessHistory)
	assert.Equal(t, want.Settings, got.Settings)
	require.Len(t, got.Library, len(want.Library))
	for i := range want.Library {
		assert.Equal(t, want.Library[i].Name, got.Library[i].Name)
		assert.Equal(t, want.Library[i].Nutrients, got.Library[i].Nutrients)
		assert.True(t, want.Library[i].LastUsedAt.Equal(got.Library[i].LastUsedAt))
	}
}

func TestDraftCodecRoundTrip(t *testing.T) {
	t.Parallel()

	draft := domain.Draft{RoutineID: "A", Exercises: map[string][]domain.Set{
		"Tricep Ext.": {{Weight: 15, Reps: 12, Difficulty: domain.DifficultyEasy}},
	}}

	data, err := EncodeDraft(draft)
	require.NoError(t, err)

	got, err := DecodeDraft(data)
	require.NoError(t, err)
	assert.Equal(t, draft, got)

	_, err = DecodeDraft([]byte("version = 7\n"))
	require.ErrorIs(t, err, domain.ErrCorruptState)
}
