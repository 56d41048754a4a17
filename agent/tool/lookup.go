package tool

import (
	"fmt"
	"strings"

	storex "github.com/matziplab/matzip-agent/agent/store"
)

const msgStoreNotFound = "해당 가게를 찾을 수 없습니다."

func (s *Set) menuLookup(storeName string) string {
	record, ok := s.registry.Find(storeName)
	if !ok {
		return msgStoreNotFound
	}

	if len(record.Menus) == 0 {
		return "해당 가게의 메뉴 정보가 없습니다."
	}

	lines := make([]string, 0, len(record.Menus))
	for _, m := range record.Menus {
		name := m.MenuName
		if name == "" {
			name = "메뉴명 없음"
		}
		price := m.Price
		if price == "" {
			price = "가격 정보 없음"
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", name, price))
	}
	return strings.Join(lines, "\n")
}

func (s *Set) addressLookup(storeName string) string {
	record, ok := s.registry.Find(storeName)
	if !ok {
		return msgStoreNotFound
	}

	address := strings.TrimSpace(record.Address)
	if address == "" {
		return fmt.Sprintf("%s의 주소 정보는 등록되어 있지 않습니다.", record.StoreName)
	}
	return fmt.Sprintf("%s의 주소는 다음과 같습니다: %s", record.StoreName, address)
}

func (s *Set) openHoursLookup(storeName string) string {
	record, ok := s.registry.Find(storeName)
	if !ok {
		return msgStoreNotFound
	}

	openHours := strings.TrimSpace(record.OpenHours)
	if openHours == "" {
		return fmt.Sprintf("%s의 영업시간 정보는 등록되어 있지 않습니다.", record.StoreName)
	}
	return fmt.Sprintf("%s의 영업시간은 %s입니다.", record.StoreName, openHours)
}

func (s *Set) phoneLookup(storeName string) string {
	record, ok := s.registry.Find(storeName)
	if !ok {
		return msgStoreNotFound
	}

	phone := strings.TrimSpace(record.Phone)
	if phone == "" {
		return fmt.Sprintf("%s의 전화번호 정보는 등록되어 있지 않습니다.", record.StoreName)
	}
	return fmt.Sprintf("%s의 전화번호는 %s입니다.", record.StoreName, phone)
}

// listFieldMessages carries the per-field sentence templates for the three
// string-encoded list attributes. Render receives the ", "-joined item list.
type listFieldMessages struct {
	notRegistered string
	badFormat     string
	render        func(storeName, joined string) string
}

func (s *Set) facilitiesLookup(storeName string) string {
	return s.listFieldLookup(storeName, func(r *storex.Record) string { return r.Facilities }, listFieldMessages{
		notRegistered: "%s의 시설 정보는 등록되어 있지 않습니다.",
		badFormat:     "%s의 시설 정보 형식이 올바르지 않아 제공이 어렵습니다.",
		render: func(storeName, joined string) string {
			return fmt.Sprintf("%s에서는 다음 시설들을 이용할 수 있어요: %s", storeName, joined)
		},
	})
}

func (s *Set) categoriesLookup(storeName string) string {
	return s.listFieldLookup(storeName, func(r *storex.Record) string { return r.Categories }, listFieldMessages{
		notRegistered: "%s의 음식 종류 정보는 등록되어 있지 않습니다.",
		badFormat:     "%s의 음식 종류 정보 형식이 올바르지 않아 제공이 어렵습니다.",
		render: func(storeName, joined string) string {
			return fmt.Sprintf("%s은(는) %s을(를) 전문으로 하는 음식점이에요.", storeName, joined)
		},
	})
}

func (s *Set) hashtagsLookup(storeName string) string {
	return s.listFieldLookup(storeName, func(r *storex.Record) string { return r.Hashtags }, listFieldMessages{
		notRegistered: "%s에 대한 분위기나 특징 정보는 등록되어 있지 않습니다.",
		badFormat:     "%s의 해시태그 정보 형식이 올바르지 않아 제공이 어렵습니다.",
		render: func(storeName, joined string) string {
			return fmt.Sprintf("%s은(는) %s 등의 해시태그로 소개되는 곳이에요.", storeName, joined)
		},
	})
}

func (s *Set) listFieldLookup(storeName string, field func(*storex.Record) string, msgs listFieldMessages) string {
	record, ok := s.registry.Find(storeName)
	if !ok {
		return msgStoreNotFound
	}

	raw := field(record)
	if storex.IsEmptyListField(raw) {
		return fmt.Sprintf(msgs.notRegistered, record.StoreName)
	}

	items, err := storex.ParseListField(raw)
	if err != nil {
		return fmt.Sprintf(msgs.badFormat, record.StoreName)
	}
	if len(items) == 0 {
		return fmt.Sprintf(msgs.notRegistered, record.StoreName)
	}

	return msgs.render(record.StoreName, strings.Join(items, ", "))
}
