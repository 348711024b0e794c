// Package pathutil manages application file paths and locations
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/adrg/xdg"

	"github.com/ayoisaiah/focusring/internal/osutil"
)

const envName = "FOCUSRING_ENV"

// Paths holds all application path configurations.
type Paths struct {
	configDir      string
	configFileName string
	dbFileName     string
	logFileName    string

	// Computed absolute paths
	configFilePath string
	dbFilePath     string
	logFilePath    string
}

var (
	paths *Paths
	once  sync.Once
)

// Initialize must be called once at program startup.
func Initialize() error {
	var initErr error

	once.Do(func() {
		paths, initErr = compute()
	})

	return initErr
}

func compute() (*Paths, error) {
	p := &Paths{
		configDir:      "focusring",
		configFileName: "config.yml",
		dbFileName:     "focusring.db",
		logFileName:    "focusring.log",
	}

	p.applyEnvironmentOverrides()

	if err := p.computePaths(); err != nil {
		return nil, err
	}

	return p, nil
}

// Must panics if paths haven't been initialized.
func Must() *Paths {
	if paths == nil {
		panic("pathutil.Initialize() must be called before accessing paths")
	}

	return paths
}

func ConfigFilePath() string {
	return Must().configFilePath
}

func DBFilePath() string {
	return Must().dbFilePath
}

func LogFilePath() string {
	return Must().logFilePath
}

func (p *Paths) applyEnvironmentOverrides() {
	env := strings.TrimSpace(os.Getenv(envName))
	if env != "" {
		p.configFileName = fmt.Sprintf("config_%s.yml", env)
		p.dbFileName = fmt.Sprintf("focusring_%s.db", env)
		p.logFileName = fmt.Sprintf("focusring_%s.log", env)
	}
}

func (p *Paths) computePaths() error {
	var err error

	relPath := filepath.Join(p.configDir, p.configFileName)

	p.configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return fmt.Errorf("resolving config file: %w", err)
	}

	dataDir := filepath.Join(xdg.DataHome, p.configDir)

	err = os.MkdirAll(filepath.Join(dataDir, "log"), osutil.DirPermission)
	if err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	p.dbFilePath = filepath.Join(dataDir, p.dbFileName)

	p.logFilePath = filepath.Join(dataDir, "log", p.logFileName)

	return nil
}
