package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/go-ps"

	"github.com/julianstephens/gryd/internal/constants"
	"github.com/julianstephens/gryd/internal/keyring"
	"github.com/julianstephens/gryd/internal/models"
)

type DoctorCmd struct{}

func (c *DoctorCmd) Run(ctx *Context) error {
	ok := true

	fmt.Printf("storage path: %s\n", ctx.Store.GetConfigPath())
	if err := ctx.Store.Load(); err != nil {
		ok = false
		fmt.Printf("✗ storage: %v (run `gryd init`)\n", err)
	} else if _, err := ctx.Store.GetHabits(); err != nil {
		ok = false
		fmt.Printf("✗ storage: %v\n", err)
	} else {
		fmt.Println("✓ storage is readable")
	}

	// Storage is single-process; another running instance risks lost writes.
	if n, err := countOtherInstances(); err != nil {
		fmt.Printf("? process check unavailable: %v\n", err)
	} else if n > 0 {
		ok = false
		fmt.Printf("✗ %d other %s process(es) running against the same storage\n", n, constants.AppName)
	} else {
		fmt.Printf("✓ no other %s process running\n", constants.AppName)
	}

	if keyring.IsAvailable() {
		fmt.Println("✓ OS keyring is available")
		for _, source := range []models.DataSource{models.DataSourceGitHub, models.DataSourceGitLab} {
			if _, err := keyring.GetToken(source); err == nil {
				fmt.Printf("✓ %s token is stored\n", source)
			} else {
				fmt.Printf("- no %s token stored\n", source)
			}
		}
	} else {
		fmt.Println("✗ OS keyring is not available; external sources will fail to sync")
		ok = false
	}

	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	fmt.Println("All checks passed.")
	return nil
}

func countOtherInstances() (int, error) {
	processes, err := ps.Processes()
	if err != nil {
		return 0, err
	}
	self := os.Getpid()
	count := 0
	for _, p := range processes {
		if p.Pid() == self {
			continue
		}
		if strings.HasPrefix(p.Executable(), constants.AppName) {
			count++
		}
	}
	return count, nil
}
