package profile

import (
	"bytes"
	"encoding/json"

	"go.uber.org/zap"
)

// Codec converts between the stored row representation and the structured
// Record. Rows written by the ingestion pipeline may carry the list columns
// as JSON strings wrapping the encoded array; older rows carry native
// arrays. Both decode to the same structured form here, and a column that
// parses as neither degrades to an empty list for that field only.
type Codec struct {
	log *zap.Logger
}

func NewCodec(log *zap.Logger) *Codec { return &Codec{log: log} }

// Decode normalizes one stored row. It never fails: a malformed column is
// replaced with an empty list and logged with the offending profile id.
func (c *Codec) Decode(raw RawRecord) Record {
	rec := Record{
		ID:         raw.ID,
		Skills:     []string{},
		Experience: []ExperienceItem{},
		Education:  []EducationItem{},
		FileURL:    raw.FileURL,
		CreatedAt:  raw.CreatedAt,
		UpdatedAt:  raw.UpdatedAt,
	}
	if err := decodeList(raw.Skills, &rec.Skills); err != nil {
		rec.Skills = []string{}
		c.fieldWarn(raw, "skills", err)
	}
	if err := decodeList(raw.Experience, &rec.Experience); err != nil {
		rec.Experience = []ExperienceItem{}
		c.fieldWarn(raw, "experience", err)
	}
	if err := decodeList(raw.Education, &rec.Education); err != nil {
		rec.Education = []EducationItem{}
		c.fieldWarn(raw, "education", err)
	}
	return rec
}

// DecodeAll normalizes a list read in stored order.
func (c *Codec) DecodeAll(raws []RawRecord) []Record {
	recs := make([]Record, 0, len(raws))
	for _, raw := range raws {
		recs = append(recs, c.Decode(raw))
	}
	return recs
}

func (c *Codec) fieldWarn(raw RawRecord, field string, err error) {
	c.log.Warn("profile field holds malformed JSON, dropping it",
		zap.String("profileId", raw.ID.String()),
		zap.String("field", field),
		zap.Error(err),
	)
}

var jsonNull = []byte("null")

// decodeList parses a stored list column into out. The value may be absent,
// a JSON array, or a JSON string containing the encoded array.
func decodeList[T any](raw json.RawMessage, out *[]T) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, jsonNull) {
		*out = []T{}
		return nil
	}
	data := []byte(raw)
	if data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		data = []byte(inner)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return err
	}
	if *out == nil {
		*out = []T{}
	}
	return nil
}
