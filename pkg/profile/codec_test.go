package profile

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testCodec() *Codec { return NewCodec(zap.NewNop()) }

func TestDecodeStringEncodedFields(t *testing.T) {
	raw := RawRecord{
		ID:         uuid.New(),
		Skills:     json.RawMessage(`"[\"Go\",\"SQL\"]"`),
		Experience: json.RawMessage(`"[]"`),
		Education:  json.RawMessage(`"[]"`),
		FileURL:    "https://x/CVs/abc.pdf",
	}

	rec := testCodec().Decode(raw)

	require.Equal(t, []string{"Go", "SQL"}, rec.Skills)
	require.Empty(t, rec.Experience)
	require.Empty(t, rec.Education)
	require.Equal(t, "https://x/CVs/abc.pdf", rec.FileURL)
}

func TestDecodeNativeArraysPassThrough(t *testing.T) {
	raw := RawRecord{
		ID:     uuid.New(),
		Skills: json.RawMessage(`["Go","SQL"]`),
		Experience: json.RawMessage(`[
			{"period":"2020-2023","company":"Acme","location":"Berlin","position":"Engineer","details":["built services"]}
		]`),
		Education: json.RawMessage(`[{"year":"2019","degree":"BSc","institution":"TU"}]`),
	}

	rec := testCodec().Decode(raw)

	require.Equal(t, []string{"Go", "SQL"}, rec.Skills)
	require.Len(t, rec.Experience, 1)
	require.Equal(t, "Acme", rec.Experience[0].Company)
	require.Equal(t, []string{"built services"}, rec.Experience[0].Details)
	require.Len(t, rec.Education, 1)
	require.Equal(t, "TU", rec.Education[0].Institution)
}

func TestDecodeMalformedFieldDegradesAlone(t *testing.T) {
	raw := RawRecord{
		ID:         uuid.New(),
		Skills:     json.RawMessage(`"not json at all"`),
		Experience: json.RawMessage(`[{"period":"2021","company":"Acme"}]`),
		Education:  json.RawMessage(`{broken`),
	}

	rec := testCodec().Decode(raw)

	// One bad field must not invalidate the record or its siblings.
	require.Empty(t, rec.Skills)
	require.Len(t, rec.Experience, 1)
	require.Empty(t, rec.Education)
}

func TestDecodeAbsentFieldsBecomeEmpty(t *testing.T) {
	rec := testCodec().Decode(RawRecord{ID: uuid.New()})

	require.NotNil(t, rec.Skills)
	require.Empty(t, rec.Skills)
	require.NotNil(t, rec.Experience)
	require.Empty(t, rec.Experience)
	require.NotNil(t, rec.Education)
	require.Empty(t, rec.Education)

	rec = testCodec().Decode(RawRecord{
		ID:     uuid.New(),
		Skills: json.RawMessage(`null`),
	})
	require.Empty(t, rec.Skills)
}

func TestDecodeRoundTripsStringEncodedArrays(t *testing.T) {
	cases := []string{
		`[]`,
		`["Go"]`,
		`["Go","SQL","Kubernetes"]`,
	}
	for _, stored := range cases {
		quoted, err := json.Marshal(stored)
		require.NoError(t, err)

		rec := testCodec().Decode(RawRecord{ID: uuid.New(), Skills: quoted})

		again, err := json.Marshal(rec.Skills)
		require.NoError(t, err)
		require.JSONEq(t, stored, string(again))
	}
}

func TestDecodeKeepsIdentityAndTimestamps(t *testing.T) {
	id := uuid.New()
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	updated := created.Add(time.Hour)

	rec := testCodec().Decode(RawRecord{
		ID:        id,
		FileURL:   "https://x/CVs/a.pdf",
		CreatedAt: created,
		UpdatedAt: updated,
	})

	require.Equal(t, id, rec.ID)
	require.Equal(t, created, rec.CreatedAt)
	require.Equal(t, updated, rec.UpdatedAt)
}
