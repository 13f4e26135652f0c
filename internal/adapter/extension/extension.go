// Package extension binds ClassificationClient to a block editor's plugin
// protocol: it describes the blocks and dispatches invocations by opcode.
package extension

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/cienciascontic/textlabx/internal/domain/entity"
	"github.com/cienciascontic/textlabx/internal/usecase"
)

// ErrUnknownOpcode is returned when a block invocation names no known block
var ErrUnknownOpcode = errors.New("unknown block opcode")

// Block opcodes
const (
	OpcodeSetModel = "setModel"
	OpcodeClassify = "classify"
)

// BlockType is the host's block shape
type BlockType string

const (
	BlockTypeCommand  BlockType = "command"
	BlockTypeReporter BlockType = "reporter"
)

// ArgumentType is the host's argument slot type
type ArgumentType string

const ArgumentTypeString ArgumentType = "string"

// Argument describes one block input slot
type Argument struct {
	Type         ArgumentType `json:"type"`
	DefaultValue string       `json:"defaultValue"`
}

// Block describes one block exposed to the editor
type Block struct {
	Opcode    string              `json:"opcode"`
	BlockType BlockType           `json:"blockType"`
	Text      string              `json:"text"`
	Arguments map[string]Argument `json:"arguments"`
}

// Info is the extension metadata the host registers
type Info struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Color1 string  `json:"color1"`
	Color2 string  `json:"color2"`
	Color3 string  `json:"color3"`
	Blocks []Block `json:"blocks"`
}

// Target is the model selection that block invocations act on
type Target interface {
	SelectModel(ctx context.Context, modelID string) error
	ClassifyText(ctx context.Context, text string) (string, error)
}

// Extension serves block invocations for one Target
type Extension struct {
	target Target
}

// New creates an Extension bound to target
func New(target Target) *Extension {
	return &Extension{target: target}
}

type clientTarget struct {
	client *usecase.ClassificationClient
}

// Standalone adapts a bare ClassificationClient to Target
func Standalone(client *usecase.ClassificationClient) Target {
	return clientTarget{client: client}
}

func (t clientTarget) SelectModel(_ context.Context, modelID string) error {
	t.client.SelectModel(modelID)
	return nil
}

func (t clientTarget) ClassifyText(ctx context.Context, text string) (string, error) {
	return t.client.ClassifyText(ctx, text), nil
}

// GetInfo returns the block definitions
func GetInfo() Info {
	return Info{
		ID:     "textlabx",
		Name:   "TextLabX",
		Color1: "#6a11cb",
		Color2: "#2575fc",
		Color3: "#4b2a99",
		Blocks: []Block{
			{
				Opcode:    OpcodeSetModel,
				BlockType: BlockTypeCommand,
				Text:      "usar modelo [ID]",
				Arguments: map[string]Argument{
					"ID": {Type: ArgumentTypeString, DefaultValue: "abc123"},
				},
			},
			{
				Opcode:    OpcodeClassify,
				BlockType: BlockTypeReporter,
				Text:      "categoría de [TEXTO]",
				Arguments: map[string]Argument{
					"TEXTO": {Type: ArgumentTypeString, DefaultValue: "Esta actividad está buenísima"},
				},
			},
		},
	}
}

// Invoke runs the block named by opcode. Command blocks return "".
func (e *Extension) Invoke(ctx context.Context, opcode string, args map[string]any) (string, error) {
	switch opcode {
	case OpcodeSetModel:
		return "", e.target.SelectModel(ctx, Coerce(args["ID"]))
	case OpcodeClassify:
		return e.target.ClassifyText(ctx, Coerce(args["TEXTO"]))
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownOpcode, opcode)
	}
}

// Coerce converts a loosely typed block argument to text.
// Missing, null, false and zero arguments become "".
func Coerce(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case bool:
		if !val {
			return ""
		}
		return strconv.FormatBool(val)
	case float64:
		if val == 0 {
			return ""
		}
		return entity.FormatNumber(val)
	case int:
		if val == 0 {
			return ""
		}
		return strconv.Itoa(val)
	default:
		return fmt.Sprint(val)
	}
}
