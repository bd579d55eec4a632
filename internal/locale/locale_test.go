package locale

import (
	"errors"
	"testing"

	"github.com/julianstephens/dateformatters/internal/models"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		identifier string
		wantID     string
		wantErr    bool
	}{
		{name: "exact posix", identifier: "en_US", wantID: "en_US"},
		{name: "bcp47 spelling", identifier: "de-DE", wantID: "de_DE"},
		{name: "encoding suffix", identifier: "fr_FR.UTF-8", wantID: "fr_FR"},
		{name: "modifier suffix", identifier: "de_DE@euro", wantID: "de_DE"},
		{name: "language only", identifier: "ja", wantID: "ja_JP"},
		{name: "british english", identifier: "en_GB", wantID: "en_GB"},
		{name: "empty", identifier: "", wantErr: true},
		{name: "garbage", identifier: "!!not a locale!!", wantErr: true},
		{name: "unsupported language", identifier: "tlh", wantErr: true},
		{name: "unsupported language matched with high confidence", identifier: "sw", wantErr: true},
		{name: "unsupported language with region", identifier: "sw_KE", wantErr: true},
		{name: "regional variant", identifier: "de_AT", wantID: "de_DE"},
		{name: "chinese script variant", identifier: "zh-Hans", wantID: "zh_CN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Resolve(tt.identifier)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Resolve(%q) error = %v, wantErr %v", tt.identifier, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownLocale) {
					t.Errorf("Resolve(%q) error = %v, want ErrUnknownLocale", tt.identifier, err)
				}
				return
			}
			if got.ID() != tt.wantID {
				t.Errorf("Resolve(%q).ID() = %q, want %q", tt.identifier, got.ID(), tt.wantID)
			}
		})
	}
}

func TestNormalize(t *testing.T) {
	tests := map[string]string{
		"en_US":       "en-US",
		"en_US.UTF-8": "en-US",
		" de_DE@euro": "de-DE",
		"zh-CN":       "zh-CN",
	}
	for in, want := range tests {
		if got := Normalize(in); got != want {
			t.Errorf("Normalize(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "nothing set", env: map[string]string{}, want: "en_US"},
		{name: "LANG only", env: map[string]string{"LANG": "de_DE.UTF-8"}, want: "de_DE"},
		{name: "LC_TIME beats LANG", env: map[string]string{"LANG": "de_DE.UTF-8", "LC_TIME": "fr_FR.UTF-8"}, want: "fr_FR"},
		{name: "LC_ALL beats everything", env: map[string]string{"LC_ALL": "ja_JP.UTF-8", "LC_TIME": "fr_FR"}, want: "ja_JP"},
		{name: "C locale", env: map[string]string{"LANG": "C.UTF-8"}, want: "en_US"},
		{name: "POSIX locale", env: map[string]string{"LC_ALL": "POSIX"}, want: "en_US"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			getenv := func(key string) string { return tt.env[key] }
			if got := FromEnv(getenv, "en_US"); got != tt.want {
				t.Errorf("FromEnv() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStylePattern(t *testing.T) {
	enUS := MustResolve("en_US")
	tests := []struct {
		date, time models.Style
		want       string
	}{
		{models.StyleShort, models.StyleNone, "M/d/yy"},
		{models.StyleNone, models.StyleShort, "h:mm a"},
		{models.StyleShort, models.StyleShort, "M/d/yy, h:mm a"},
		{models.StyleLong, models.StyleShort, "MMMM d, y 'at' h:mm a"},
		{models.StyleNone, models.StyleNone, ""},
	}
	for _, tt := range tests {
		if got := enUS.StylePattern(tt.date, tt.time); got != tt.want {
			t.Errorf("StylePattern(%v, %v) = %q, want %q", tt.date, tt.time, got, tt.want)
		}
	}
}

func TestSupportedTableIsComplete(t *testing.T) {
	all := Supported()
	if len(all) == 0 {
		t.Fatal("no supported locales")
	}
	for _, l := range all {
		if l.AMSymbol() == "" || l.PMSymbol() == "" {
			t.Errorf("%s: missing day period symbols", l.ID())
		}
		for _, s := range models.AllStyles[1:] {
			if l.DatePattern(s) == "" || l.TimePattern(s) == "" {
				t.Errorf("%s: missing pattern for style %v", l.ID(), s)
			}
		}
		if l.DisplayName() == "" {
			t.Errorf("%s: empty display name", l.ID())
		}
	}
}

func TestLocalizedNames(t *testing.T) {
	de := MustResolve("de_DE")
	date := mustDate(t)
	if got := de.Month(date, false, false); got != "Januar" {
		t.Errorf("de Month = %q, want %q", got, "Januar")
	}
	if got := de.Weekday(date, false); got != "Montag" {
		t.Errorf("de Weekday = %q, want %q", got, "Montag")
	}

	en := MustResolve("en_US")
	if got := en.Month(date, true, true); got != "Jan" {
		t.Errorf("en abbreviated Month = %q, want %q", got, "Jan")
	}
	if got := en.Era(true, true); got != "Anno Domini" {
		t.Errorf("en long era = %q", got)
	}
}
