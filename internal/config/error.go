package config

import "fmt"

func errorf(typeMethod, format string, a ...interface{}) error {
	return fmt.Errorf("github.com/nicolagi/worddiff/internal/config."+typeMethod+": "+format, a...)
}
