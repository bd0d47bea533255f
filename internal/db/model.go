// nolint
//
//lint:file-ignore U1000 ignore unused code, it's generated
package db

import (
	"time"
)

var Tables = struct {
	VisitorState struct {
		Name, Alias string
	}
}{
	VisitorState: struct {
		Name, Alias string
	}{
		Name:  "visitorState",
		Alias: "t",
	},
}

type VisitorState struct {
	tableName struct{} `pg:"visitorState,alias:t,discard_unknown_columns"`

	Key       string    `pg:"key,pk"`
	Value     string    `pg:"value,use_zero"`
	UpdatedAt time.Time `pg:"updatedAt,use_zero"`
}
