package qb

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLog_PrettyPrint(t *testing.T) {
	tests := []struct {
		desc     string
		log      Log
		contains []string
		excludes []string
	}{
		{
			desc: "rendered query",
			log: Log{
				Type:     "render",
				Table:    "friend",
				Query:    "SELECT uid1, uid2 FROM friend\n   WHERE uid1 = 1 ;",
				Duration: 12,
			},
			contains: []string{"render", "FQL", "12", "SELECT uid1, uid2 FROM friend WHERE uid1 = 1 ;"},
			excludes: []string{"ERR", "\n   "},
		},
		{
			desc: "failed render",
			log: Log{
				Type:  "render",
				Table: "nope",
				Error: `[builder] unknown table: "nope"`,
			},
			contains: []string{"ERR", `[builder] unknown table: "nope"`},
			excludes: []string{"FQL"},
		},
	}

	for i, tc := range tests {
		var buf bytes.Buffer

		tc.log.PrettyPrint(&buf)

		for _, s := range tc.contains {
			assert.Contains(t, buf.String(), s, "TEST[%d], Failed.\n%s", i, tc.desc)
		}

		for _, s := range tc.excludes {
			assert.NotContains(t, buf.String(), s, "TEST[%d], Failed.\n%s", i, tc.desc)
		}
	}
}
