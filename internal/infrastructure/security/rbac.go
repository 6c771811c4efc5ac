package security

import (
	"bufio"
	_ "embed"
	"fmt"
	"strings"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

//go:embed rbac_model.conf
var rbacModel string

//go:embed rbac_policy.csv
var rbacPolicy string

// Authorizer answers whether a role may call a route.
type Authorizer struct {
	enforcer *casbin.Enforcer
}

// NewAuthorizer loads the embedded route policy.
func NewAuthorizer() (*Authorizer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}

	rules, err := parsePolicy(rbacPolicy)
	if err != nil {
		return nil, err
	}
	if _, err := e.AddPolicies(rules); err != nil {
		return nil, fmt.Errorf("add rbac policies: %w", err)
	}
	return &Authorizer{enforcer: e}, nil
}

// Allowed checks role against a route pattern such as /v1/offers/:id.
func (a *Authorizer) Allowed(role, path, method string) (bool, error) {
	return a.enforcer.Enforce(role, path, method)
}

func parsePolicy(raw string) ([][]string, error) {
	var rules [][]string
	sc := bufio.NewScanner(strings.NewReader(raw))
	for line := 1; sc.Scan(); line++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, ",")
		if len(fields) != 4 || strings.TrimSpace(fields[0]) != "p" {
			return nil, fmt.Errorf("rbac policy line %d: expected \"p, role, path, methods\"", line)
		}
		rules = append(rules, []string{
			strings.TrimSpace(fields[1]),
			strings.TrimSpace(fields[2]),
			strings.TrimSpace(fields[3]),
		})
	}
	return rules, sc.Err()
}
