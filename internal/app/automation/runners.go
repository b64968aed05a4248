package automation

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/fr0stylo/enms/internal/app/domain"
)

// runner executes one service against one device. The device is the zero
// value for services without targets.
type runner func(ctx context.Context, e *Executor, job domain.Job, device domain.Device) (any, error)

var runners = map[string]runner{
	domain.TypeSwissArmyKnife:       runSwissArmyKnife,
	domain.TypeRestCall:             runRestCall,
	domain.TypeNetmikoConfiguration: runNetmikoConfiguration,
	domain.TypeNetmikoValidation:    runNetmikoValidation,
	domain.TypeNapalmConfiguration:  runNapalmConfiguration,
	domain.TypeNapalmRollback:       runNapalmRollback,
	domain.TypeNapalmGetters:        runNapalmGetters,
	domain.TypeConfigureBGP:         runConfigureBGP,
}

// ErrContentMismatch is returned when a validation output does not match content_match.
var ErrContentMismatch = errors.New("output does not match expected content")

func runSwissArmyKnife(_ context.Context, _ *Executor, job domain.Job, _ domain.Device) (any, error) {
	return job.Name, nil
}

func runNetmikoConfiguration(ctx context.Context, e *Executor, job domain.Job, device domain.Device) (any, error) {
	return e.driver.SendConfig(ctx, device, job, stringParam(job, "content"))
}

func runNetmikoValidation(ctx context.Context, e *Executor, job domain.Job, device domain.Device) (any, error) {
	output, err := e.driver.SendCommand(ctx, device, job, stringParam(job, "command"))
	if err != nil {
		return output, err
	}
	return output, matchOutput(job, output)
}

func runNapalmConfiguration(ctx context.Context, e *Executor, job domain.Job, device domain.Device) (any, error) {
	return e.driver.SendConfig(ctx, device, job, stringParam(job, "content"))
}

func runNapalmRollback(ctx context.Context, e *Executor, job domain.Job, device domain.Device) (any, error) {
	return e.driver.Rollback(ctx, device, job)
}

func runNapalmGetters(ctx context.Context, e *Executor, job domain.Job, device domain.Device) (any, error) {
	return e.driver.Getters(ctx, device, job, listParam(job, "getters"))
}

var bgpTemplate = template.Must(template.New("bgp").Option("missingkey=error").Parse(`vrf definition {{.vrf_name}}
interface {{.loopback}}
 vrf forwarding {{.vrf_name}}
 ip address {{.loopback_ip}} 255.255.255.255
router bgp {{.local_as}}
 address-family ipv4 vrf {{.vrf_name}}
  network {{.loopback_ip}} mask 255.255.255.255
  neighbor {{.neighbor_ip}} remote-as {{.remote_as}}
  neighbor {{.neighbor_ip}} activate
  neighbor {{.neighbor_ip}} send-community both
  neighbor {{.neighbor_ip}} as-override
 exit-address-family
`))

func runConfigureBGP(ctx context.Context, e *Executor, job domain.Job, device domain.Device) (any, error) {
	var config bytes.Buffer
	if err := bgpTemplate.Execute(&config, job.Parameters); err != nil {
		return nil, fmt.Errorf("render bgp configuration: %w", err)
	}
	return e.driver.SendConfig(ctx, device, job, config.String())
}

// matchOutput applies the content_match and content_match_regex parameters.
func matchOutput(job domain.Job, output string) error {
	pattern := stringParam(job, "content_match")
	ok, err := domain.MatchContent(output, pattern, boolParam(job, "content_match_regex"))
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: %q", ErrContentMismatch, pattern)
	}
	return nil
}

func stringParam(job domain.Job, key string) string {
	value, ok := job.Param(key)
	if !ok || value == nil {
		return ""
	}
	if text, ok := value.(string); ok {
		return text
	}
	return fmt.Sprint(value)
}

func boolParam(job domain.Job, key string) bool {
	switch value, _ := job.Param(key); typed := value.(type) {
	case bool:
		return typed
	case string:
		switch strings.ToLower(strings.TrimSpace(typed)) {
		case "y", "yes", "true", "on", "1":
			return true
		}
	}
	return false
}

func listParam(job domain.Job, key string) []string {
	value, _ := job.Param(key)
	switch typed := value.(type) {
	case []string:
		return typed
	case []any:
		out := make([]string, 0, len(typed))
		for _, item := range typed {
			out = append(out, fmt.Sprint(item))
		}
		return out
	case string:
		if typed == "" {
			return nil
		}
		return strings.Split(typed, ",")
	default:
		return nil
	}
}
