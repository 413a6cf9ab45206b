package system

import (
	"github.com/julianstephens/studylit/internal/cli"
)

type LogoutCmd struct{}

func (c *LogoutCmd) Run(ctx *cli.Context) error {
	ok, err := ctx.Confirm("Log out?", "Your tasks, study subjects and preferences are removed from this device.")
	if err != nil {
		return err
	}
	if !ok {
		ctx.Println("Cancelled.")
		return nil
	}
	if err := ctx.Data().Logout(ctx.Context()); err != nil {
		return err
	}
	ctx.Println("Logged out. All local data was removed.")
	return nil
}
