package pgstore

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/supalite/supalite/postgrest/record"
)

// Fixtures is synthetic seed data: table name to records. Records may omit
// id and timestamps; seeding synthesizes them.
type Fixtures map[string][]record.Record

type fixturesFile struct {
	Tables map[string][]map[string]any `yaml:"tables"`
}

// LoadFixtures reads a YAML fixtures file of the form:
//
//	tables:
//	  leads:
//	    - id: lead-1
//	      name: Dana
//	      status: active
func LoadFixtures(path string) (Fixtures, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixtures: %w", err)
	}
	var file fixturesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse fixtures %s: %w", path, err)
	}

	fixtures := make(Fixtures, len(file.Tables))
	for table, rows := range file.Tables {
		recs := make([]record.Record, 0, len(rows))
		for _, row := range rows {
			recs = append(recs, record.Record(row))
		}
		fixtures[table] = recs
	}
	return fixtures, nil
}

// Seed inserts fixtures into the store, synthesizing ids and timestamps for
// records that lack them. A fixture id of the wrong type (say, an unquoted
// number in YAML) is an error rather than a silently minted UUID. Pass a nil
// clock for wall-clock timestamps.
func (s *Store) Seed(fixtures Fixtures, now record.Clock) error {
	for table, recs := range fixtures {
		for i, rec := range recs {
			if err := rec.CheckID(); err != nil {
				return fmt.Errorf("seed %s[%d]: %w", table, i, err)
			}
			if err := s.Insert(table, record.Normalize(rec, now)); err != nil {
				return fmt.Errorf("seed %s[%d]: %w", table, i, err)
			}
		}
	}
	return nil
}
