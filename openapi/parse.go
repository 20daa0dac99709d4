package openapi

import (
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// ParseDeclaration returns the `declaration` mapping of a raw declaration.
//
// A nil raw string is not an error and logs nothing. Text that is not YAML,
// or YAML without a top-level `declaration` mapping, logs one warning for the
// endpoint path and yields no declaration; there is no partial result.
func ParseDeclaration(log logrus.FieldLogger, path string, raw *string) (Value, bool) {
	if raw == nil {
		return Value{}, false
	}

	var tree interface{}
	if err := yaml.Unmarshal([]byte(*raw), &tree); err != nil {
		log.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("found declaration, but it can not be parsed as yaml")
		return Value{}, false
	}

	declaration := NewValue(tree).Get("declaration")
	if !declaration.IsMapping() {
		log.WithField("path", path).Warn("found declaration, but it has no declaration mapping")
		return Value{}, false
	}

	return declaration, true
}
