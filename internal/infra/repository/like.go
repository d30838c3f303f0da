package repository

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ILIKE用にワイルドカードをエスケープして部分一致パターンを作る
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
