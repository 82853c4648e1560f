package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	logger "github.com/multiversx/mx-chain-logger-go"
	"github.com/urfave/cli"

	"github.com/multiversx/mx-chain-reflection-go/msgpack"
	"github.com/multiversx/mx-chain-reflection-go/naming"
	"github.com/multiversx/mx-chain-reflection-go/shape/factory"
)

var log = logger.GetOrCreate("cmd/fixturegen")

var (
	configFile = cli.StringFlag{
		Name:  "config",
		Usage: "Path of the TOML configuration file",
		Value: "./config/fixturegen.toml",
	}
)

// Sample types serialized into the golden fixtures. Cross-implementation test
// suites compare their encoders against the emitted bytes.
type person struct {
	Name string
	Age  uint8
}

type transfer struct {
	Sender   string
	Receiver string
	Amount   uint64
	Nonce    uint32
}

type widthProbe struct {
	FixintEdge   uint8
	OneByteEdge  uint16
	TwoBytesEdge uint32
	Negative     int8
	DeepNegative int64
}

type namedFixture struct {
	name  string
	value any
}

var fixtures = []namedFixture{
	{name: "person", value: person{Name: "Ada", Age: 36}},
	{name: "transfer", value: transfer{Sender: "alice", Receiver: "bob", Amount: 1_000_000, Nonce: 7}},
	{name: "width_probe", value: widthProbe{
		FixintEdge:   127,
		OneByteEdge:  255,
		TwoBytesEdge: 65536,
		Negative:     -32,
		DeepNegative: -2147483649,
	}},
}

func main() {
	app := cli.NewApp()
	app.Name = "Fixture generation Tool"
	app.Version = "v1.0.0"
	app.Usage = "This binary will serialize a set of sample values and write the resulting MessagePack bytes as hex fixtures"
	app.Flags = []cli.Flag{configFile}
	app.Authors = []cli.Author{
		{
			Name:  "The MultiversX Team",
			Email: "contact@multiversx.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return generateFixtures(c)
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func generateFixtures(ctx *cli.Context) error {
	config, err := loadConfig(ctx.GlobalString(configFile.Name))
	if err != nil {
		return err
	}

	err = logger.SetLogLevel(config.LogLevel)
	if err != nil {
		return err
	}

	rule, err := resolveRenameRule(config.RenameRule)
	if err != nil {
		return err
	}

	shapeFactory, err := factory.NewShapeFactory(factory.ArgsNewShapeFactory{RenameRule: rule})
	if err != nil {
		return err
	}

	serializer, err := msgpack.NewSerializer(msgpack.NewCodec())
	if err != nil {
		return err
	}

	lines := make([]string, 0, len(fixtures))
	for _, fixture := range fixtures {
		_, err = shapeFactory.RegisterShape(fixture.value)
		if err != nil {
			return err
		}

		data, errSerialize := serializer.Serialize(fixture.value)
		if errSerialize != nil {
			return errSerialize
		}

		log.Debug("serialized fixture", "name", fixture.name, "numBytes", len(data))
		lines = append(lines, fmt.Sprintf("%s %s", fixture.name, hex.EncodeToString(data)))
	}

	err = os.WriteFile(config.OutputFile, []byte(strings.Join(lines, "\n")+"\n"), 0644)
	if err != nil {
		return err
	}

	log.Info("fixtures written", "file", config.OutputFile, "count", len(lines))
	return nil
}

func resolveRenameRule(spelling string) (naming.Rule, error) {
	if len(spelling) == 0 {
		return naming.Passthrough, nil
	}

	return naming.ParseRule(spelling)
}
