package database

import (
	"fmt"
	"strconv"
	"strings"
)

type dialect struct {
	driver      string
	tableSuffix string
	numbered    bool // $1, $2 placeholders instead of ?
}

var (
	mysqlDialect    = dialect{driver: "mysql", tableSuffix: " ENGINE=InnoDB DEFAULT CHARSET=utf8mb4"}
	postgresDialect = dialect{driver: "postgres", numbered: true}
)

func dialectFor(driver string) (dialect, error) {
	switch driver {
	case "", "mysql":
		return mysqlDialect, nil
	case "postgres":
		return postgresDialect, nil
	default:
		return dialect{}, fmt.Errorf("unsupported db driver: %s", driver)
	}
}

// rebind rewrites ? placeholders for dialects that number them
func (d dialect) rebind(query string) string {
	if !d.numbered {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (d dialect) createTable(body string) string {
	return body + d.tableSuffix
}
