// Command admintoken prints a signed admin token for the Smileline API.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/roguepikachu/smileline/internal/auth"
	"github.com/roguepikachu/smileline/internal/config"
	"github.com/roguepikachu/smileline/pkg/logger"
)

func main() {
	subject := flag.String("sub", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	config.InitConf()
	ctx := context.Background()
	if config.Conf.AdminJWTSecret == "" {
		logger.Fatal(ctx, "ADMIN_JWT_SECRET is not set")
	}
	token, err := auth.Sign(config.Conf.AdminJWTSecret, *subject, []string{auth.RoleAdmin}, *ttl, time.Now())
	if err != nil {
		logger.Fatal(ctx, "failed to sign token: %v", err)
	}
	fmt.Println(token)
}
