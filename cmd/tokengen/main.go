// tokengen выпускает JWT сотрудника для локальной проверки API.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/m04kA/SMC-ShiftService/internal/config"
	"github.com/m04kA/SMC-ShiftService/internal/integrations/principal"
)

func main() {
	var (
		configPath = pflag.StringP("config", "c", "config.toml", "path to TOML config (secret, role, ttl)")
		workerID   = pflag.Int64P("worker", "w", 0, "worker id (token subject)")
		role       = pflag.String("role", "", "role claim, defaults to auth.worker_role")
		ttl        = pflag.Duration("ttl", 0, "token lifetime, defaults to auth.token_ttl")
	)
	pflag.Parse()

	if *workerID <= 0 {
		fmt.Fprintln(os.Stderr, "--worker must be a positive id")
		pflag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	if *role == "" {
		*role = cfg.Auth.WorkerRole
	}
	if *ttl == 0 {
		*ttl = cfg.Auth.TokenTTLDuration()
	}

	token, err := principal.IssueToken(cfg.Auth.JWTSecret, *workerID, *role, *ttl, time.Now())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(token)
}
