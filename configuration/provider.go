package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnsupportedProviderMethod is returned by provider methods that koanf may call but the provider can not serve.
var ErrUnsupportedProviderMethod = ierrors.New("provider does not support this method")

// lowerPosflag implements a pflag command line provider with lower cased keys.
type lowerPosflag struct {
	delim   string
	flagSet *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a command line flags provider that returns a nested map[string]interface{} of the
// flags, where the nesting hierarchy of the keys is defined by delim ("queue.capacity" becomes
// {queue: {capacity: ...}}).
//
// Flags that were not set on the command line only contribute their default value if the key was not provided by
// an earlier source (e.g. a config file) of the given Koanf instance.
func lowerPosflagProvider(flagSet *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagSet: flagSet,
		delim:   delim,
		ko:      ko,
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	flatMap := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		flatMap[key] = p.flagValue(f)
	})

	return maps.Unflatten(flatMap, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.Wrap(ErrUnsupportedProviderMethod, "pflag provider can not read bytes")
}

// Watch is not supported by the pflag provider.
func (p *lowerPosflag) Watch(_ func(event interface{}, err error)) error {
	return ierrors.Wrap(ErrUnsupportedProviderMethod, "pflag provider can not watch")
}

func (p *lowerPosflag) flagValue(f *pflag.Flag) interface{} {
	var (
		value interface{}
		err   error
	)

	switch f.Value.Type() {
	case "int":
		value, err = p.flagSet.GetInt(f.Name)
	case "int64":
		value, err = p.flagSet.GetInt64(f.Name)
	case "float64":
		value, err = p.flagSet.GetFloat64(f.Name)
	case "bool":
		value, err = p.flagSet.GetBool(f.Name)
	case "stringSlice":
		value, err = p.flagSet.GetStringSlice(f.Name)
	case "stringArray":
		value, err = p.flagSet.GetStringArray(f.Name)
	case "intSlice":
		value, err = p.flagSet.GetIntSlice(f.Name)
	default:
		return f.Value.String()
	}

	if err != nil {
		return f.Value.String()
	}

	return value
}
