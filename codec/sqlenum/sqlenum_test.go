/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package sqlenum_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"dirpx.dev/enumx"
	"dirpx.dev/enumx/codec"
	"dirpx.dev/enumx/codec/sqlenum"
	"dirpx.dev/enumx/entity"
)

type Stage struct{ entity.Base }

var (
	Draft     = Stage{entity.MustNew(1, "draft")}
	Published = Stage{entity.MustNew(2, "published")}
)

func init() { enumx.MustDeclare(Draft, Published) }

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE posts (id INTEGER PRIMARY KEY, stage TEXT, stage_id INTEGER)`)
	require.NoError(t, err)
	return db
}

func TestColumn_RoundTripThroughSQLite(t *testing.T) {
	db := openDB(t)

	_, err := db.Exec(`INSERT INTO posts (id, stage, stage_id) VALUES (?, ?, ?)`,
		1, sqlenum.NewColumn(Published), sqlenum.NewNumber(Published))
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO posts (id, stage, stage_id) VALUES (?, ?, ?)`,
		2, sqlenum.NewColumn(Stage{}), sqlenum.Number[Stage]{})
	require.NoError(t, err)

	var raw string
	require.NoError(t, db.QueryRow(`SELECT stage FROM posts WHERE id = 1`).Scan(&raw))
	assert.Equal(t, "published", raw)

	var (
		col sqlenum.Column[Stage]
		num sqlenum.Number[Stage]
	)
	require.NoError(t, db.QueryRow(`SELECT stage, stage_id FROM posts WHERE id = 1`).Scan(&col, &num))
	assert.True(t, col.Valid)
	assert.Equal(t, Published, col.Entity)
	assert.True(t, num.Valid)
	assert.Equal(t, Published, num.Entity)

	require.NoError(t, db.QueryRow(`SELECT stage, stage_id FROM posts WHERE id = 2`).Scan(&col, &num))
	assert.False(t, col.Valid)
	assert.Equal(t, Stage{}, col.Entity)
	assert.False(t, num.Valid)
}

func TestColumn_UnknownCodeFailsScan(t *testing.T) {
	db := openDB(t)
	_, err := db.Exec(`INSERT INTO posts (id, stage) VALUES (1, 'archived')`)
	require.NoError(t, err)

	var col sqlenum.Column[Stage]
	err = db.QueryRow(`SELECT stage FROM posts WHERE id = 1`).Scan(&col)
	require.ErrorIs(t, err, codec.ErrDecode)
	assert.Contains(t, err.Error(), `"archived"`)
	assert.Contains(t, err.Error(), "draft, published")
}

func TestColumn_Scan(t *testing.T) {
	var col sqlenum.Column[Stage]

	require.NoError(t, col.Scan([]byte("draft")))
	assert.Equal(t, Draft, col.Entity)

	require.NoError(t, col.Scan(int64(2)))
	assert.Equal(t, Published, col.Entity)

	require.NoError(t, col.Scan(nil))
	assert.False(t, col.Valid)

	require.ErrorIs(t, col.Scan(3.5), codec.ErrDecode)
	require.ErrorIs(t, col.Scan(int64(9)), codec.ErrDecode)
}

func TestNumber_Scan(t *testing.T) {
	var num sqlenum.Number[Stage]

	require.NoError(t, num.Scan("1"))
	assert.Equal(t, Draft, num.Entity)

	require.ErrorIs(t, num.Scan("draft"), codec.ErrDecode)
	require.ErrorIs(t, num.Scan(true), codec.ErrDecode)
}

func TestValue(t *testing.T) {
	v, err := sqlenum.NewColumn(Draft).Value()
	require.NoError(t, err)
	assert.Equal(t, "draft", v)

	v, err = sqlenum.NewNumber(Draft).Value()
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	v, err = sqlenum.Column[Stage]{Valid: true}.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}
