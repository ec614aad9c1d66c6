// Package config persists tool settings through pluggable file drivers.
package config

// Driver reads and writes one whole Config.
type Driver interface {
	Exists() (bool, error)
	Read() (Config, error)
	Write(config Config) error
}

// Store guards a driver behind read-modify-write access.
type Store struct {
	driver Driver
}

// NewStore seeds the driver with the default config when its backing file
// does not exist yet.
func NewStore(driver Driver) (Store, error) {
	exists, err := driver.Exists()
	if err != nil {
		return Store{}, err
	}
	if !exists {
		if err := driver.Write(defaultConfig); err != nil {
			return Store{}, err
		}
	}

	return Store{driver: driver}, nil
}

func (s Store) GetConfig() (Config, error) {
	return s.driver.Read()
}

// UpdateConfig applies fn to the stored config and writes the result back.
func (s Store) UpdateConfig(fn func(cfg Config) (Config, error)) error {
	cfg, err := s.driver.Read()
	if err != nil {
		return err
	}

	cfg, err = fn(cfg)
	if err != nil {
		return err
	}

	return s.driver.Write(cfg)
}
