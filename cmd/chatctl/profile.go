package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const defaultProfileName = ".chatctl.yaml"

type Profile struct {
	BaseURL   string `yaml:"base_url"`
	SocketURL string `yaml:"socket_url,omitempty"`
	UserID    string `yaml:"user_id"`
	Role      string `yaml:"role,omitempty"`
}

func defaultProfilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultProfileName
	}
	return filepath.Join(home, defaultProfileName)
}

// loadProfile reads the profile at path. A missing file yields an empty profile.
func loadProfile(path string) (Profile, error) {
	var p Profile

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return p, nil
	}
	if err != nil {
		return p, fmt.Errorf("failed to read profile %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("failed to parse profile %s: %w", path, err)
	}
	return p, nil
}

// merge overlays non-empty fields of o.
func (p Profile) merge(o Profile) Profile {
	if o.BaseURL != "" {
		p.BaseURL = o.BaseURL
	}
	if o.SocketURL != "" {
		p.SocketURL = o.SocketURL
	}
	if o.UserID != "" {
		p.UserID = o.UserID
	}
	if o.Role != "" {
		p.Role = o.Role
	}
	return p
}

func (p Profile) validate() error {
	if p.BaseURL == "" {
		return errors.New("base_url is not set (profile or --base-url)")
	}
	if p.UserID == "" {
		return errors.New("user_id is not set (profile or --user)")
	}
	return nil
}

// socketURL falls back to the /ws endpoint on the API host.
func (p Profile) socketURL() string {
	if p.SocketURL != "" {
		return p.SocketURL
	}
	base := strings.TrimSuffix(p.BaseURL, "/")
	switch {
	case strings.HasPrefix(base, "https://"):
		return "wss://" + strings.TrimPrefix(base, "https://") + "/ws"
	case strings.HasPrefix(base, "http://"):
		return "ws://" + strings.TrimPrefix(base, "http://") + "/ws"
	}
	return base + "/ws"
}
