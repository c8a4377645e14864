package cli

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/gryd/internal/constants"
)

type SettingsCmd struct {
	List SettingsListCmd `cmd:"" default:"1" help:"Show all settings."`
	Get  SettingsGetCmd  `cmd:"" help:"Read a single setting."`
	Set  SettingsSetCmd  `cmd:"" help:"Change a single setting."`
}

type SettingsListCmd struct{}

func (c *SettingsListCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}
	for _, key := range constants.SettingKeys {
		value, err := ctx.Engine.Setting(key)
		if err != nil {
			return err
		}
		fmt.Printf("%-22s %t\n", key, value)
	}
	return nil
}

type SettingsGetCmd struct {
	Key string `arg:"" help:"Setting key."`
}

func (c *SettingsGetCmd) Run(ctx *Context) error {
	if err := ctx.initEngine(); err != nil {
		return err
	}
	value, err := ctx.Engine.Setting(c.Key)
	if err != nil {
		return err
	}
	fmt.Println(value)
	return nil
}

type SettingsSetCmd struct {
	Key   string `arg:"" help:"Setting key."`
	Value string `arg:"" help:"true or false."`
}

func (c *SettingsSetCmd) Run(ctx *Context) error {
	value, err := strconv.ParseBool(c.Value)
	if err != nil {
		return fmt.Errorf("invalid value %q (expected true or false)", c.Value)
	}
	if err := ctx.initEngine(); err != nil {
		return err
	}
	if err := ctx.Engine.SetSetting(c.Key, value); err != nil {
		return err
	}
	fmt.Printf("Set %s to %t\n", c.Key, value)
	return nil
}
