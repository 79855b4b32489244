package requests

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/campusdesk/internal/common"
	"github.com/dmitrijs2005/campusdesk/internal/filex"
	"github.com/dmitrijs2005/campusdesk/internal/library/models"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// record is the on-disk form of a request.
type record struct {
	Student   string `json:"student"`
	Book      string `json:"book"`
	Priority  int    `json:"priority"`
	Timestamp string `json:"timestamp"`
}

// JSONFileRepository stores the collection as an indented JSON array.
type JSONFileRepository struct {
	path   string
	schema *jsonschema.Schema
	loc    *time.Location
}

// NewJSONFileRepository returns a repository backed by the file at path. The
// file need not exist; it is created by the first Save. Timestamps are read
// and written in the local time zone.
func NewJSONFileRepository(path string) *JSONFileRepository {
	schema, err := compileStateSchema()
	if err != nil {
		// the schema is a package constant; failing to compile it is a bug
		panic(err)
	}
	return &JSONFileRepository{path: path, schema: schema, loc: time.Local}
}

// Path returns the state file location.
func (r *JSONFileRepository) Path() string {
	return r.path
}

// Load reads the state file. A missing file yields an empty collection and
// no error. Content that is not valid JSON, does not match the state schema
// or carries an unparsable timestamp yields an error wrapping
// common.ErrPersistence.
func (r *JSONFileRepository) Load(ctx context.Context) ([]models.Request, error) {
	data, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", common.ErrPersistence, r.path, err)
	}

	if err := validateState(r.schema, data); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", common.ErrPersistence, r.path, err)
	}

	var recs []record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", common.ErrPersistence, r.path, err)
	}

	out := make([]models.Request, 0, len(recs))
	for i, rec := range recs {
		ts, err := time.ParseInLocation(models.TimestampLayout, rec.Timestamp, r.loc)
		if err != nil {
			return nil, fmt.Errorf("%w: record %d: %v", common.ErrPersistence, i, err)
		}
		out = append(out, models.Request{
			Student:     rec.Student,
			Book:        rec.Book,
			Priority:    rec.Priority,
			SubmittedAt: ts,
		})
	}
	return out, nil
}

// Save replaces the state file with pending, in order, as an indented JSON
// array. The write goes through a temp file and a rename so a failed Save
// leaves the previous content in place. Errors wrap common.ErrPersistence.
func (r *JSONFileRepository) Save(ctx context.Context, pending []models.Request) error {
	recs := make([]record, 0, len(pending))
	for _, p := range pending {
		recs = append(recs, record{
			Student:   p.Student,
			Book:      p.Book,
			Priority:  p.Priority,
			Timestamp: p.SubmittedAt.In(r.loc).Format(models.TimestampLayout),
		})
	}

	data, err := json.MarshalIndent(recs, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encode state: %v", common.ErrPersistence, err)
	}

	if err := filex.WriteFileAtomic(r.path, data, 0o644); err != nil {
		return fmt.Errorf("%w: write %s: %v", common.ErrPersistence, r.path, err)
	}
	return nil
}
