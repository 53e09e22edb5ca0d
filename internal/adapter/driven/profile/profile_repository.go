package profile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/ec2-metrics-reporter/internal/domain/entity"
	"github.com/diillson/ec2-metrics-reporter/internal/domain/repository"
	"github.com/diillson/ec2-metrics-reporter/internal/shared/types"
	"gopkg.in/ini.v1"
)

const regionKey = "region"

// ProfileRepositoryImpl enumera perfis a partir do arquivo compartilhado de
// configuração da AWS CLI (~/.aws/config).
type ProfileRepositoryImpl struct {
	path    string
	console types.ConsoleInterface
}

// NewProfileRepository cria uma nova implementação do ProfileRepository.
// Um path vazio resolve para AWS_CONFIG_FILE ou ~/.aws/config.
func NewProfileRepository(path string, console types.ConsoleInterface) repository.ProfileRepository {
	return &ProfileRepositoryImpl{path: path, console: console}
}

// ListProfiles returns one Profile per named section, in file order. Seções
// sem region herdam a region da seção default. Arquivo ausente devolve lista
// vazia, não erro.
func (r *ProfileRepositoryImpl) ListProfiles() ([]entity.Profile, error) {
	path, err := r.configPath()
	if err != nil {
		return nil, err
	}

	cfg, err := ini.Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			r.console.LogWarning("AWS config file not found at %s; no profiles to report", path)
			return nil, nil
		}
		return nil, fmt.Errorf("error reading AWS config file %s: %w", path, err)
	}

	defaultRegion := ""
	if section, err := cfg.GetSection("default"); err == nil {
		defaultRegion = section.Key(regionKey).String()
	}

	var profiles []entity.Profile
	for _, section := range cfg.Sections() {
		name := section.Name()
		if name == ini.DefaultSection {
			continue
		}
		name = strings.TrimPrefix(name, "profile ")

		region := section.Key(regionKey).String()
		if region == "" {
			region = defaultRegion
		}
		if region == "" {
			r.console.LogWarning("Profile %s has no region and no default region is set; skipping", name)
			continue
		}

		profiles = append(profiles, entity.Profile{Name: name, Region: region})
	}

	return profiles, nil
}

func (r *ProfileRepositoryImpl) configPath() (string, error) {
	if r.path != "" {
		return r.path, nil
	}
	if env := os.Getenv("AWS_CONFIG_FILE"); env != "" {
		return env, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not resolve home directory: %w", err)
	}
	return filepath.Join(homeDir, ".aws", "config"), nil
}
