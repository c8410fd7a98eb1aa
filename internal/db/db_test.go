package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSQLiteDSN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"crm.db", "crm.db?_txlock=immediate&_pragma=busy_timeout(5000)"},
		{"crm.db?_pragma=busy_timeout(100)", "crm.db?_pragma=busy_timeout(100)&_txlock=immediate"},
		{"crm.db?_txlock=exclusive", "crm.db?_txlock=exclusive&_pragma=busy_timeout(5000)"},
		{"crm.db?_txlock=deferred&_pragma=busy_timeout(1)", "crm.db?_txlock=deferred&_pragma=busy_timeout(1)"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, sqliteDSN(tc.in), tc.in)
	}
}
