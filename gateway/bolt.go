package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/rep/internal/apperr"
)

var errDatabaseLocked = &apperr.Error{
	Message: "is rep already running? Only one instance can be active at a time",
}

var tables = []string{TableRoutines, TableExercises, TableWorkoutLogs}

// BoltClient is a local row store backed by BoltDB. Each table is a
// bucket; rows are JSON values keyed by their id column. It emulates
// the remote backend's cascading deletes.
type BoltClient struct {
	db *bolt.DB
}

// NewBolt creates or opens a local database and locks it.
func NewBolt(path string) (*BoltClient, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(path, fileMode, &bolt.Options{
		Timeout: 1 * time.Second,
	})
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errDatabaseLocked
		}

		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, table := range tables {
			_, err := tx.CreateBucketIfNotExists([]byte(table))
			if err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &BoltClient{db: db}, nil
}

func (c *BoltClient) Close() error {
	return c.db.Close()
}

// normalizeRows converts a row struct or a slice of row structs into
// generic maps via their JSON form.
func normalizeRows(rows any) ([]map[string]any, error) {
	b, err := json.Marshal(rows)
	if err != nil {
		return nil, err
	}

	if len(b) > 0 && b[0] == '[' {
		var maps []map[string]any

		err = json.Unmarshal(b, &maps)

		return maps, err
	}

	var m map[string]any

	err = json.Unmarshal(b, &m)

	return []map[string]any{m}, err
}

func matches(row map[string]any, filters []Filter) bool {
	for _, f := range filters {
		if fmt.Sprint(row[f.Column]) != fmt.Sprint(f.Value) {
			return false
		}
	}

	return true
}

// less orders two column values, numerically when both are numbers.
func less(a, b any) bool {
	af, aok := a.(float64)
	bf, bok := b.(float64)

	if aok && bok {
		return af < bf
	}

	return fmt.Sprint(a) < fmt.Sprint(b)
}

func (c *BoltClient) readRows(
	table string,
	filters []Filter,
) ([]map[string]any, error) {
	var rows []map[string]any

	err := c.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(table))
		if b == nil {
			return fmt.Errorf("unknown table: %s", table)
		}

		return b.ForEach(func(_, v []byte) error {
			var row map[string]any

			if err := json.Unmarshal(v, &row); err != nil {
				return err
			}

			if matches(row, filters) {
				rows = append(rows, row)
			}

			return nil
		})
	})

	return rows, err
}

func (c *BoltClient) Select(
	_ context.Context,
	table string,
	q Query,
	dest any,
) error {
	rows, err := c.readRows(table, q.Filters)
	if err != nil {
		return persistErr("select", table, err)
	}

	if q.OrderBy != "" {
		sort.SliceStable(rows, func(i, j int) bool {
			if q.Descending {
				return less(rows[j][q.OrderBy], rows[i][q.OrderBy])
			}

			return less(rows[i][q.OrderBy], rows[j][q.OrderBy])
		})
	}

	if rows == nil {
		rows = []map[string]any{}
	}

	b, err := json.Marshal(rows)
	if err != nil {
		return persistErr("select", table, err)
	}

	if err := json.Unmarshal(b, dest); err != nil {
		return decodeErr("select", table, err)
	}

	return nil
}

func (c *BoltClient) putRows(table string, rows []map[string]any) error {
	return c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(table))
		if b == nil {
			return fmt.Errorf("unknown table: %s", table)
		}

		for _, row := range rows {
			id, _ := row["id"].(string)
			if id == "" {
				id = uuid.NewString()
				row["id"] = id
			}

			value, err := json.Marshal(row)
			if err != nil {
				return err
			}

			if err := b.Put([]byte(id), value); err != nil {
				return err
			}
		}

		return nil
	})
}

func (c *BoltClient) Insert(
	_ context.Context,
	table string,
	rows, dest any,
) error {
	maps, err := normalizeRows(rows)
	if err != nil {
		return persistErr("insert", table, err)
	}

	if err := c.putRows(table, maps); err != nil {
		return persistErr("insert", table, err)
	}

	if dest == nil {
		return nil
	}

	b, err := json.Marshal(maps)
	if err != nil {
		return persistErr("insert", table, err)
	}

	if err := json.Unmarshal(b, dest); err != nil {
		return decodeErr("insert", table, err)
	}

	return nil
}

func (c *BoltClient) Update(
	_ context.Context,
	table string,
	patch map[string]any,
	filters ...Filter,
) error {
	rows, err := c.readRows(table, filters)
	if err != nil {
		return persistErr("update", table, err)
	}

	for _, row := range rows {
		for k, v := range patch {
			row[k] = v
		}
	}

	if err := c.putRows(table, rows); err != nil {
		return persistErr("update", table, err)
	}

	return nil
}

func (c *BoltClient) Upsert(
	_ context.Context,
	table string,
	rows any,
) error {
	maps, err := normalizeRows(rows)
	if err != nil {
		return persistErr("upsert", table, err)
	}

	if err := c.putRows(table, maps); err != nil {
		return persistErr("upsert", table, err)
	}

	return nil
}

func (c *BoltClient) deleteRows(
	table string,
	filters []Filter,
) ([]map[string]any, error) {
	rows, err := c.readRows(table, filters)
	if err != nil {
		return nil, err
	}

	err = c.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(table))

		for _, row := range rows {
			id, _ := row["id"].(string)

			if err := b.Delete([]byte(id)); err != nil {
				return err
			}
		}

		return nil
	})

	return rows, err
}

func (c *BoltClient) Delete(
	_ context.Context,
	table string,
	filters ...Filter,
) error {
	deleted, err := c.deleteRows(table, filters)
	if err != nil {
		return persistErr("delete", table, err)
	}

	// Cascade like the remote backend: routines take their exercises
	// and logs with them, exercises take their logs.
	switch table {
	case TableRoutines:
		for _, row := range deleted {
			id, _ := row["id"].(string)

			_, err = c.deleteRows(TableExercises, []Filter{
				Eq("routine_id", id),
			})
			if err != nil {
				return persistErr("delete", TableExercises, err)
			}

			_, err = c.deleteRows(TableWorkoutLogs, []Filter{
				Eq("routine_id", id),
			})
			if err != nil {
				return persistErr("delete", TableWorkoutLogs, err)
			}
		}
	case TableExercises:
		for _, row := range deleted {
			id, _ := row["id"].(string)

			_, err = c.deleteRows(TableWorkoutLogs, []Filter{
				Eq("exercise_id", id),
			})
			if err != nil {
				return persistErr("delete", TableWorkoutLogs, err)
			}
		}
	}

	return nil
}
