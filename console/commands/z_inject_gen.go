// gen for home toolset
package commands

import (
	app "github.com/go-home-admin/home/bootstrap/services/app"
)

var _CheckCommandSingle *CheckCommand
var _OpenapiCommandSingle *OpenapiCommand

func GetAllProvider() []interface{} {
	return []interface{}{
		NewCheckCommand(),
		NewOpenapiCommand(),
	}
}

func NewCheckCommand() *CheckCommand {
	if _CheckCommandSingle == nil {
		_CheckCommandSingle = &CheckCommand{}
		app.AfterProvider(_CheckCommandSingle, "")
	}
	return _CheckCommandSingle
}
func NewOpenapiCommand() *OpenapiCommand {
	if _OpenapiCommandSingle == nil {
		_OpenapiCommandSingle = &OpenapiCommand{}
		app.AfterProvider(_OpenapiCommandSingle, "")
	}
	return _OpenapiCommandSingle
}
