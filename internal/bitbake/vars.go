package bitbake

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// LookupVariable returns the value of a build variable scoped to an image.
//
// Variables come from two sources, tried in order: a cached <image>.env file
// in the configured vars directory, then the output of the orchestrator's
// environment dump (`bitbake -e <image>`). An unset variable is reported as
// not found, never as an error; only a broken vars file read is an error.
func (c *Client) LookupVariable(ctx context.Context, name, image string) (string, bool, error) {
	vars, err := c.imageVars(ctx, image)
	if err != nil {
		return "", false, err
	}
	value, ok := vars[name]
	return value, ok, nil
}

// imageVars returns the memoized variable map for an image, loading it on
// first use.
func (c *Client) imageVars(ctx context.Context, image string) (map[string]string, error) {
	if vars, ok := c.cache[image]; ok {
		return vars, nil
	}

	vars, err := c.loadVars(ctx, image)
	if err != nil {
		return nil, err
	}
	c.cache[image] = vars
	return vars, nil
}

// loadVars reads the image's .env file, falling back to the orchestrator's
// environment dump when the file is absent.
func (c *Client) loadVars(ctx context.Context, image string) (map[string]string, error) {
	if c.varsDir != "" {
		path := filepath.Join(c.varsDir, image+".env")
		f, err := os.Open(path) //#nosec G304 -- path built from configured vars dir and image name
		switch {
		case err == nil:
			defer func() { _ = f.Close() }()
			c.log.Debug().Str("vars_file", path).Msg("reading build variables")
			return parseVars(f), nil
		case !os.IsNotExist(err):
			return nil, err
		}
	}
	return c.dumpVars(ctx, image), nil
}

// dumpVars runs the orchestrator's environment dump and parses its output.
// A missing or failing orchestrator yields an empty map: the lookup contract
// treats an unanswerable query as "variable unset".
func (c *Client) dumpVars(ctx context.Context, image string) map[string]string {
	path, err := exec.LookPath(c.command)
	if err != nil {
		c.log.Debug().Str("command", c.command).Msg("build tool not on PATH, variables unavailable")
		return map[string]string{}
	}

	cmd := exec.CommandContext(ctx, path, "-e", image) //#nosec G204 -- command comes from config, image from user input to a query flag
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	if err := cmd.Run(); err != nil {
		c.log.Debug().Err(err).Str("image", image).Msg("environment dump failed")
		return map[string]string{}
	}
	return parseVars(&stdout)
}

// parseVars extracts NAME="value" assignments from an .env file or an
// environment dump. Comments, blank lines, and lines without an assignment
// are skipped; an optional leading "export" and surrounding quotes are
// stripped.
func parseVars(r io.Reader) map[string]string {
	vars := make(map[string]string)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")

		idx := strings.Index(line, "=")
		if idx <= 0 {
			continue
		}
		name := strings.TrimSpace(line[:idx])
		if strings.ContainsAny(name, " \t") {
			continue
		}
		value := strings.TrimSpace(line[idx+1:])
		value = strings.Trim(value, `"`)
		vars[name] = value
	}
	return vars
}
