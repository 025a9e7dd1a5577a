package config

import (
	"log"
	"strings"
)

// Required pairs an environment variable name with the value read for it.
type Required struct {
	Env   string
	Value string
}

func Need(env, value string) Required { return Required{Env: env, Value: value} }

func NeedBytes(env string, value []byte) Required { return Required{Env: env, Value: string(value)} }

// Missing returns the names of every requirement with an empty value, in order.
func Missing(reqs ...Required) []string {
	var out []string
	for _, r := range reqs {
		if strings.TrimSpace(r.Value) == "" {
			out = append(out, r.Env)
		}
	}
	return out
}

// MustHave exits listing all missing variables at once.
func MustHave(reqs ...Required) {
	if missing := Missing(reqs...); len(missing) > 0 {
		log.Fatalf("missing required env %s", strings.Join(missing, ", "))
	}
}
