// The config package encapsulates configuration for the worddiff
// command.
//
// The configuration file is optional. It is made of lines with a key
// and a value separated by white space. Empty lines and lines
// starting with '#' are ignored. Values can be Go-quoted, which is the
// only way to give a marker that starts or ends with a space. For
// example:
//
//	# plain text markers
//	deletion-prefix [-
//	deletion-suffix -]
//	insertion-prefix {+
//	insertion-suffix +}
//	case-fold false
//	context 3
//
// Command line flags take precedence over values in the file.
package config
