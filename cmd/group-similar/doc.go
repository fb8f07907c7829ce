// Command group-similar reads newline-separated records and prints groups of
// similar records, keyed by a representative.
//
//	group-similar --threshold 0.3 names.txt
//	cat merchants.txt | group-similar --json --ignore-case
//
// Records are compared with Jaro-Winkler dissimilarity and clustered by
// complete linkage. Settings may also be read from
// $XDG_CONFIG_HOME/group-similar/config.toml; flags take precedence.
package main
