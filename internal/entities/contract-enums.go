package entities

// Enum - общий контракт для закрытых строковых полей записи.
// Пустая строка означает "не выбрано" и считается допустимой.
type Enum interface {
	Allowed() []string
	Valid() bool
	Label() string
}

func validEnum(v string, allowed []string) bool {
	if v == "" {
		return true
	}
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}

// CustomerStatus - правовой статус заказчика.
type CustomerStatus string

const (
	CustomerPerson       CustomerStatus = "person"
	CustomerIP           CustomerStatus = "ip"
	CustomerSelfEmployed CustomerStatus = "self_employed"
	CustomerCompany      CustomerStatus = "company"
)

var customerStatusLabels = map[CustomerStatus]string{
	CustomerPerson:       "физическое лицо",
	CustomerIP:           "индивидуальный предприниматель",
	CustomerSelfEmployed: "самозанятый",
	CustomerCompany:      "юридическое лицо",
}

func (CustomerStatus) Allowed() []string {
	return []string{"person", "ip", "self_employed", "company"}
}
func (v CustomerStatus) Valid() bool   { return validEnum(string(v), v.Allowed()) }
func (v CustomerStatus) Label() string { return customerStatusLabels[v] }

// ObjectType - тип объекта.
type ObjectType string

const (
	ObjectApartment  ObjectType = "apartment"
	ObjectHouse      ObjectType = "house"
	ObjectCommercial ObjectType = "commercial"
	ObjectOther      ObjectType = "other"
)

var objectTypeLabels = map[ObjectType]string{
	ObjectApartment:  "квартира",
	ObjectHouse:      "дом",
	ObjectCommercial: "коммерческое помещение",
	ObjectOther:      "другое",
}

func (ObjectType) Allowed() []string {
	return []string{"apartment", "house", "commercial", "other"}
}
func (v ObjectType) Valid() bool   { return validEnum(string(v), v.Allowed()) }
func (v ObjectType) Label() string { return objectTypeLabels[v] }

// YesNo - флаг да/нет, который в анкете выбирается из списка, а не галочкой.
type YesNo string

const (
	No  YesNo = "no"
	Yes YesNo = "yes"
)

func (YesNo) Allowed() []string { return []string{"no", "yes"} }
func (v YesNo) Valid() bool     { return validEnum(string(v), v.Allowed()) }
func (v YesNo) Label() string {
	switch v {
	case Yes:
		return "да"
	case No:
		return "нет"
	}
	return ""
}

// ProjectScope - объём дизайн-проекта.
type ProjectScope string

const (
	ScopeFull         ProjectScope = "full"
	ScopeRoomsOnly    ProjectScope = "rooms_only"
	ScopeConsultation ProjectScope = "consultation"
	ScopeOther        ProjectScope = "other"
)

var projectScopeLabels = map[ProjectScope]string{
	ScopeFull:         "полный дизайн-проект",
	ScopeRoomsOnly:    "отдельные помещения",
	ScopeConsultation: "консультация",
	ScopeOther:        "другое",
}

func (ProjectScope) Allowed() []string {
	return []string{"full", "rooms_only", "consultation", "other"}
}
func (v ProjectScope) Valid() bool   { return validEnum(string(v), v.Allowed()) }
func (v ProjectScope) Label() string { return projectScopeLabels[v] }

// RenovationType - тип ремонта.
type RenovationType string

const (
	RenovationNewBuild  RenovationType = "new_build"
	RenovationSecondary RenovationType = "secondary"
	RenovationCosmetic  RenovationType = "cosmetic"
	RenovationCapital   RenovationType = "capital"
	RenovationOther     RenovationType = "other"
)

var renovationTypeLabels = map[RenovationType]string{
	RenovationNewBuild:  "новостройка",
	RenovationSecondary: "вторичное жильё",
	RenovationCosmetic:  "косметический ремонт",
	RenovationCapital:   "капитальный ремонт",
	RenovationOther:     "другое",
}

func (RenovationType) Allowed() []string {
	return []string{"new_build", "secondary", "cosmetic", "capital", "other"}
}
func (v RenovationType) Valid() bool   { return validEnum(string(v), v.Allowed()) }
func (v RenovationType) Label() string { return renovationTypeLabels[v] }

// Party - кто отвечает или платит за конкретную статью расходов.
type Party string

const (
	PartyCustomer Party = "customer"
	PartyExecutor Party = "executor"
	PartySplit    Party = "split"
	PartyOther    Party = "other"
)

var partyLabels = map[Party]string{
	PartyCustomer: "заказчик",
	PartyExecutor: "исполнитель",
	PartySplit:    "пополам",
	PartyOther:    "по договорённости",
}

func (Party) Allowed() []string {
	return []string{"customer", "executor", "split", "other"}
}
func (v Party) Valid() bool   { return validEnum(string(v), v.Allowed()) }
func (v Party) Label() string { return partyLabels[v] }

// CommunicationChannel - основной канал связи по проекту.
type CommunicationChannel string

const (
	ChannelTelegram CommunicationChannel = "telegram"
	ChannelWhatsApp CommunicationChannel = "whatsapp"
	ChannelEmail    CommunicationChannel = "email"
	ChannelPhone    CommunicationChannel = "phone"
	ChannelOther    CommunicationChannel = "other"
)

var channelLabels = map[CommunicationChannel]string{
	ChannelTelegram: "Telegram",
	ChannelWhatsApp: "WhatsApp",
	ChannelEmail:    "электронная почта",
	ChannelPhone:    "телефон",
	ChannelOther:    "другое",
}

func (CommunicationChannel) Allowed() []string {
	return []string{"telegram", "whatsapp", "email", "phone", "other"}
}
func (v CommunicationChannel) Valid() bool   { return validEnum(string(v), v.Allowed()) }
func (v CommunicationChannel) Label() string { return channelLabels[v] }
