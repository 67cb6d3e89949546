package service

import (
	"regexp"
	"strings"
)

const sqlPlaceholder = "-- enter a SQL statement to format"

// Clause keywords start a new line. Compound forms come first so that
// "LEFT JOIN" or "GROUP BY" is matched before its parts.
var sqlClauseRegex = regexp.MustCompile(`(?i)\b(` + strings.Join([]string{
	`LEFT\s+OUTER\s+JOIN`, `RIGHT\s+OUTER\s+JOIN`, `FULL\s+OUTER\s+JOIN`,
	`LEFT\s+JOIN`, `RIGHT\s+JOIN`, `INNER\s+JOIN`, `CROSS\s+JOIN`, `JOIN`,
	`GROUP\s+BY`, `ORDER\s+BY`, `INSERT\s+INTO`, `DELETE\s+FROM`, `UNION\s+ALL`,
	`SELECT`, `FROM`, `WHERE`, `HAVING`, `LIMIT`, `OFFSET`, `UNION`, `VALUES`,
	`UPDATE`, `SET`, `CREATE`, `ALTER`, `DROP`,
}, "|") + `)\b`)

// Keywords that are uppercased in place.
var sqlKeywordRegex = regexp.MustCompile(`(?i)\b(` + strings.Join([]string{
	"SELECT", "FROM", "WHERE", "JOIN", "LEFT", "RIGHT", "INNER", "OUTER", "FULL", "CROSS",
	"GROUP", "BY", "ORDER", "LIMIT", "OFFSET", "INSERT", "INTO", "UPDATE", "DELETE",
	"CREATE", "ALTER", "DROP", "TABLE", "DATABASE", "INDEX", "VIEW", "PROCEDURE",
	"FUNCTION", "TRIGGER", "VALUES", "SET", "HAVING", "UNION", "ALL", "DISTINCT",
	"AS", "ON", "AND", "OR", "NOT", "IN", "IS", "NULL", "LIKE", "BETWEEN", "EXISTS",
	"ASC", "DESC", "CASE", "WHEN", "THEN", "ELSE", "END",
}, "|") + `)\b`)

var (
	sqlSpaceRegex    = regexp.MustCompile(`\s+`)
	sqlCommaRegex    = regexp.MustCompile(`\s*,\s*`)
	sqlOperatorRegex = regexp.MustCompile(`\s*(<=|>=|<>|!=|=|<|>)\s*`)
)

// FormatSQL uppercases keywords, breaks lines before clause keywords and
// normalizes whitespace. It does not parse the statement.
func FormatSQL(sql string) string {
	if strings.TrimSpace(sql) == "" {
		return sqlPlaceholder
	}

	s := sqlSpaceRegex.ReplaceAllString(strings.TrimSpace(sql), " ")
	s = sqlKeywordRegex.ReplaceAllStringFunc(s, strings.ToUpper)
	s = sqlCommaRegex.ReplaceAllString(s, ", ")
	s = sqlOperatorRegex.ReplaceAllString(s, " $1 ")
	s = sqlClauseRegex.ReplaceAllStringFunc(s, func(kw string) string {
		return "\n" + sqlSpaceRegex.ReplaceAllString(strings.ToUpper(kw), " ")
	})

	lines := strings.Split(s, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(sqlSpaceRegex.ReplaceAllString(line, " "))
		if line != "" {
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n")
}
