package tool

import (
	"encoding/json"
	"fmt"

	openaisdk "github.com/openai/openai-go"
	"github.com/rs/zerolog/log"

	contractx "github.com/matziplab/matzip-agent/agent/contract"
	storex "github.com/matziplab/matzip-agent/agent/store"
)

const (
	ToolMenuLookup       = "get_menu_by_store_name"
	ToolAddressLookup    = "get_address_by_store_name"
	ToolOpenHoursLookup  = "get_openhours_by_store_name"
	ToolPhoneLookup      = "get_phone_by_store_name"
	ToolFacilitiesLookup = "get_facilities_by_store_name"
	ToolCategoriesLookup = "get_categories_by_store_name"
	ToolHashtagsLookup   = "get_hashtags_by_store_name"
)

// Handler resolves one store attribute into a user-facing sentence. Handlers
// absorb every failure into the returned string; they never error.
type Handler func(storeName string) string

// Set is the fixed lookup tool set offered to the model. Dispatch is a name
// keyed table so adding a tool is one Register call, with unknown names
// falling through to an explicit placeholder result.
type Set struct {
	registry *storex.Registry
	handlers map[string]Handler
	schemas  []openaisdk.ChatCompletionToolParam
}

func NewSet(registry *storex.Registry) *Set {
	s := &Set{
		registry: registry,
		handlers: make(map[string]Handler, 7),
	}

	s.register(menuLookupSchema(), s.menuLookup)
	s.register(addressLookupSchema(), s.addressLookup)
	s.register(openHoursLookupSchema(), s.openHoursLookup)
	s.register(phoneLookupSchema(), s.phoneLookup)
	s.register(facilitiesLookupSchema(), s.facilitiesLookup)
	s.register(categoriesLookupSchema(), s.categoriesLookup)
	s.register(hashtagsLookupSchema(), s.hashtagsLookup)

	return s
}

func (s *Set) register(schema openaisdk.ChatCompletionToolParam, handler Handler) {
	s.schemas = append(s.schemas, schema)
	s.handlers[schema.Function.Name] = handler
}

// Schemas returns the tool definitions for the model request, in registration
// order.
func (s *Set) Schemas() []openaisdk.ChatCompletionToolParam {
	return s.schemas
}

// Dispatch executes one model-requested invocation and returns the result
// string. Unknown tool names yield a placeholder instead of failing the turn.
func (s *Set) Dispatch(call contractx.ToolCall) string {
	handler, ok := s.handlers[call.Name]
	if !ok {
		log.Warn().Str("tool", call.Name).Msg("model requested undefined tool")
		return fmt.Sprintf("정의되지 않은 함수입니다: %s", call.Name)
	}
	return handler(storeNameArg(call.Arguments))
}

// storeNameArg extracts the single store_name argument. Malformed argument
// JSON degrades to an empty name, which the registry lookup then reports as
// store-not-found.
func storeNameArg(rawArgs string) string {
	if rawArgs == "" {
		return ""
	}
	var args struct {
		StoreName string `json:"store_name"`
	}
	if err := json.Unmarshal([]byte(rawArgs), &args); err != nil {
		log.Warn().Str("arguments", rawArgs).Err(err).Msg("invalid tool arguments")
		return ""
	}
	return args.StoreName
}

func storeNameParameters() openaisdk.FunctionParameters {
	return openaisdk.FunctionParameters{
		"type": "object",
		"properties": map[string]any{
			"store_name": map[string]any{
				"type":        "string",
				"description": "조회할 가게 이름",
			},
		},
		"required":             []string{"store_name"},
		"additionalProperties": false,
	}
}

func menuLookupSchema() openaisdk.ChatCompletionToolParam {
	return openaisdk.ChatCompletionToolParam{
		Function: openaisdk.FunctionDefinitionParam{
			Name:        ToolMenuLookup,
			Description: openaisdk.String("가게 이름으로 해당 가게의 메뉴와 가격 정보를 반환합니다."),
			Parameters:  storeNameParameters(),
		},
	}
}

func addressLookupSchema() openaisdk.ChatCompletionToolParam {
	return openaisdk.ChatCompletionToolParam{
		Function: openaisdk.FunctionDefinitionParam{
			Name:        ToolAddressLookup,
			Description: openaisdk.String("가게 이름으로 해당 가게의 주소를 알려줍니다. 예: \"이 가게의 위치는 어디야?\", \"해당 가게의 장소 알려줘\""),
			Parameters:  storeNameParameters(),
		},
	}
}

func openHoursLookupSchema() openaisdk.ChatCompletionToolParam {
	return openaisdk.ChatCompletionToolParam{
		Function: openaisdk.FunctionDefinitionParam{
			Name:        ToolOpenHoursLookup,
			Description: openaisdk.String("가게 이름으로 해당 가게의 영업시간을 알려줍니다."),
			Parameters:  storeNameParameters(),
		},
	}
}

func phoneLookupSchema() openaisdk.ChatCompletionToolParam {
	return openaisdk.ChatCompletionToolParam{
		Function: openaisdk.FunctionDefinitionParam{
			Name:        ToolPhoneLookup,
			Description: openaisdk.String("특정 가게의 전화번호를 물어볼 때 호출됩니다. 예: \"정원레스토랑 전화번호 알려줘\", \"예약 전화 어떻게 해?\""),
			Parameters:  storeNameParameters(),
		},
	}
}

func facilitiesLookupSchema() openaisdk.ChatCompletionToolParam {
	return openaisdk.ChatCompletionToolParam{
		Function: openaisdk.FunctionDefinitionParam{
			Name:        ToolFacilitiesLookup,
			Description: openaisdk.String("특정 가게의 편의시설이나 제공 서비스(예약, 포장, 와이파이 등)를 물어볼 때 호출됩니다."),
			Parameters:  storeNameParameters(),
		},
	}
}

func categoriesLookupSchema() openaisdk.ChatCompletionToolParam {
	return openaisdk.ChatCompletionToolParam{
		Function: openaisdk.FunctionDefinitionParam{
			Name:        ToolCategoriesLookup,
			Description: openaisdk.String("특정 가게의 음식 종류(한식, 양식, 중식 등)를 물어볼 때 호출됩니다."),
			Parameters:  storeNameParameters(),
		},
	}
}

func hashtagsLookupSchema() openaisdk.ChatCompletionToolParam {
	return openaisdk.ChatCompletionToolParam{
		Function: openaisdk.FunctionDefinitionParam{
			Name:        ToolHashtagsLookup,
			Description: openaisdk.String("특정 가게의 분위기나 특징을 물어볼 때 해시태그 기반으로 설명을 제공합니다."),
			Parameters:  storeNameParameters(),
		},
	}
}
