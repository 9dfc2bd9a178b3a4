package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/open-force/jsonparse"
)

// Coercion targets accepted by --type.
const (
	typeRaw      = "raw"
	typeString   = "string"
	typeBool     = "bool"
	typeInt      = "int"
	typeLong     = "long"
	typeDouble   = "double"
	typeDecimal  = "decimal"
	typeBlob     = "blob"
	typeID       = "id"
	typeUUID     = "uuid"
	typeDate     = "date"
	typeTime     = "time"
	typeDatetime = "datetime"
)

var typeFlag string

const getLongDescription = `Parse each input document (or stdin when no files are given), resolve
the --path, and print the value coerced to --type. The default target,
raw, re-encodes the destination subtree as JSON.

Multiple files are processed concurrently up to --parallel workers;
output keeps the input order.

` + pathGrammarHelp

// getCmd represents the get command.
var getCmd = newGetCmd()

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get [files...]",
		Short: "Resolve a path and print the coerced value",
		Long:  getLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := args
			if len(inputs) == 0 {
				inputs = []string{"-"}
			}
			return runGet(cmd, inputs)
		},
	}

	configureGetFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(getCmd)
}

func configureGetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&typeFlag, typeFlagName, "t", typeRaw, "coercion target (raw, string, bool, int, long, double, decimal, blob, id, uuid, date, time, datetime)")
	bindFlagToConfig(cmd.Flags().Lookup(typeFlagName), typeKey)
}

func runGet(cmd *cobra.Command, inputs []string) error {
	path := viper.GetString(pathKey)
	target := viper.GetString(typeKey)
	yamlMode := viper.GetBool(yamlKey)

	limit := viper.GetInt(parallelKey)
	if limit < 1 {
		limit = 1
	}

	results := make([]string, len(inputs))
	group := new(errgroup.Group)
	group.SetLimit(limit)

	for i, name := range inputs {
		i, name := i, name
		group.Go(func() error {
			out, err := getFromSource(name, path, target, yamlMode)
			if err != nil {
				if name == "-" {
					return err
				}
				return fmt.Errorf("%s: %w", name, err)
			}
			results[i] = out
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return err
	}

	withNames := len(inputs) > 1
	for i, out := range results {
		if withNames {
			cmd.Printf("%s: %s\n", inputs[i], out)
		} else {
			cmd.Println(out)
		}
	}
	return nil
}

func getFromSource(name, path, target string, yamlMode bool) (string, error) {
	data, err := readSource(name)
	if err != nil {
		return "", err
	}

	node, err := decodeDocument(data, yamlMode)
	if err != nil {
		return "", err
	}

	if path != "" {
		node, err = node.Resolve(path)
		if err != nil {
			return "", err
		}
	}
	slog.Debug("resolved", "source", name, "path", path, "shape", node.Shape().String())

	return renderValue(node, target)
}

func readSource(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}

// decodeDocument builds a node tree from JSON text, or from YAML text
// when yamlMode is set.
func decodeDocument(data []byte, yamlMode bool) (*jsonparse.Node, error) {
	if yamlMode {
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
		return jsonparse.NewNode(raw), nil
	}
	return jsonparse.ParseBytes(data)
}

func renderValue(node *jsonparse.Node, target string) (string, error) {
	switch target {
	case typeRaw:
		encoded, err := json.Marshal(node.Value())
		if err != nil {
			return "", fmt.Errorf("encoding subtree: %w", err)
		}
		return string(encoded), nil

	case typeString:
		return node.GetStringValue()

	case typeBool:
		v, err := node.GetBooleanValue()
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(v), nil

	case typeInt:
		v, err := node.GetIntValue()
		if err != nil {
			return "", err
		}
		return strconv.Itoa(v), nil

	case typeLong:
		v, err := node.GetLongValue()
		if err != nil {
			return "", err
		}
		return strconv.FormatInt(v, 10), nil

	case typeDouble:
		v, err := node.GetDoubleValue()
		if err != nil {
			return "", err
		}
		return strconv.FormatFloat(v, 'f', -1, 64), nil

	case typeDecimal:
		v, err := node.GetDecimalValue()
		if err != nil {
			return "", err
		}
		if v == nil {
			return "null", nil
		}
		return v.Text('f'), nil

	case typeBlob:
		v, err := node.GetBlobValue()
		if err != nil {
			return "", err
		}
		return string(v), nil

	case typeID:
		v, err := node.GetIDValue()
		if err != nil {
			return "", err
		}
		return v.String(), nil

	case typeUUID:
		v, err := node.GetUUIDValue()
		if err != nil {
			return "", err
		}
		return v.String(), nil

	case typeDate:
		v, err := node.GetDateValue()
		if err != nil {
			return "", err
		}
		return v.Format("2006-01-02"), nil

	case typeTime:
		v, err := node.GetTimeValue()
		if err != nil {
			return "", err
		}
		return v.Format("15:04:05.999999999"), nil

	case typeDatetime:
		v, err := node.GetDatetimeValue()
		if err != nil {
			return "", err
		}
		return v.Format(time.RFC3339Nano), nil
	}

	return "", fmt.Errorf("unknown coercion target %q", target)
}
