// Package strutil provides string case conversions and Unicode helpers.
//
// All conversions share one word-splitting rule: words break on
// separators and on case boundaries, acronym runs included, so
// "parseHTTPResponse", "parse_http_response" and "Parse HTTP response"
// convert identically.
//
//	strutil.Camel("user name")    // "userName"
//	strutil.Pascal("user-name")   // "UserName"
//	strutil.Snake("userName")     // "user_name"
//	strutil.Kebab("UserName")     // "user-name"
//
// [RemoveDiacritics] normalizes accented text via NFD decomposition and
// combining-mark removal ("Café" -> "Cafe").
package strutil
