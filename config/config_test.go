package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/mock/gomock"

	"medialog/config/mocks"
)

func TestNew(t *testing.T) {
	t.Run("fail to read in config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		cu := mocks.NewMockConfigUnmarshaler(ctrl)

		wantErr := errors.New("expected testing error")
		cu.EXPECT().ConfigFileUsed().Times(1).Return("fake-config.yaml")
		cu.EXPECT().ReadInConfig().Times(1).Return(wantErr)
		c, err := New(cu)
		if err == nil {
			t.Errorf("TestNew() err = %v, want %v", err, wantErr)
		}

		wantConfig := Config{}
		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %v, want %v", c, wantConfig)
		}
	})

	t.Run("success with file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("./testing/config.yaml")
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				Scheme: "https",
				Host:   "my-host",
				APIKey: "my-api-key",
			},
			Storage: Storage{
				FilePath: "my.sqlite",
			},
			Tracker: Tracker{
				ScanConcurrency: 10,
				ImportRate:      2.5,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})

	t.Run("success without file", func(t *testing.T) {
		cu := viper.New()
		cu.SetConfigFile("")
		cu.SetDefault("tmdb.scheme", "https")
		cu.SetDefault("tracker.scanConcurrency", 20)
		c, err := New(cu)
		if err != nil {
			t.Errorf("TestNew() err = %v, want %v", err, nil)
		}

		wantConfig := Config{
			TMDB: TMDB{
				Scheme: "https",
			},
			Tracker: Tracker{
				ScanConcurrency: 20,
			},
		}

		if !reflect.DeepEqual(c, wantConfig) {
			t.Errorf("TestNew() config = %+v, want %+v", c, wantConfig)
		}
	})
}

func TestValidate(t *testing.T) {
	valid := Config{
		Server:  Server{Port: 8080},
		Storage: Storage{FilePath: "medialog.sqlite"},
		Tracker: Tracker{
			ScanConcurrency: 20,
			ScanInterval:    time.Hour,
			ImportRate:      4,
		},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("Validate() err = %v, want nil", err)
	}

	invalid := valid
	invalid.Tracker.ScanConcurrency = 0
	if err := invalid.Validate(); err == nil {
		t.Error("Validate() err = nil, want ScanConcurrency error")
	}

	invalid = valid
	invalid.Storage.FilePath = ""
	if err := invalid.Validate(); err == nil {
		t.Error("Validate() err = nil, want FilePath error")
	}
}
