package entities

// Record - типизированная анкета договора: по одному значению на каждое известное поле.
// Нулевое значение Record{} - полностью пустая анкета, NewRecord() - анкета с умолчаниями.
type Record struct {
	ContractNumber string `json:"contract_number" label:"Номер договора"`
	ContractCity   string `json:"contract_city" label:"Город"`
	ContractDate   string `json:"contract_date" label:"Дата договора"`

	CustomerStatus   CustomerStatus `json:"customer_status" label:"Статус заказчика"`
	CustomerFIO      string         `json:"customer_fio" label:"ФИО / наименование заказчика"`
	CustomerAddress  string         `json:"customer_address" label:"Адрес заказчика"`
	CustomerPhone    string         `json:"customer_phone" label:"Телефон заказчика"`
	CustomerEmail    string         `json:"customer_email" label:"Email заказчика"`
	CustomerINN      string         `json:"customer_inn" label:"ИНН заказчика"`
	CustomerTelegram string         `json:"customer_telegram" label:"Telegram заказчика"`
	CustomerWhatsApp string         `json:"customer_whatsapp" label:"WhatsApp заказчика"`

	ExecutorName     string `json:"executor_name" label:"Исполнитель"`
	ExecutorAddress  string `json:"executor_address" label:"Адрес исполнителя"`
	ExecutorINN      string `json:"executor_inn" label:"ИНН исполнителя"`
	ExecutorPhone    string `json:"executor_phone" label:"Телефон исполнителя"`
	ExecutorEmail    string `json:"executor_email" label:"Email исполнителя"`
	ExecutorTelegram string `json:"executor_telegram" label:"Telegram исполнителя"`

	ObjectAddress        string     `json:"object_address" label:"Адрес объекта"`
	ObjectCountry        string     `json:"object_country" label:"Страна"`
	ObjectCity           string     `json:"object_city" label:"Город объекта"`
	ObjectHouse          string     `json:"object_house" label:"Дом"`
	ObjectEntrance       string     `json:"object_entrance" label:"Подъезд"`
	ObjectApartment      string     `json:"object_apartment" label:"Квартира"`
	ObjectType           ObjectType `json:"object_type" label:"Тип объекта"`
	ObjectRoomsCount     string     `json:"object_rooms_count" label:"Количество комнат"`
	ObjectAreaSqm        string     `json:"object_area_sqm" label:"Площадь, м²"`
	ObjectCeilingHeightM string     `json:"object_ceiling_height_m" label:"Высота потолков, м"`
	ObjectFloor          string     `json:"object_floor" label:"Этаж"`
	ObjectFloorsTotal    string     `json:"object_floors_total" label:"Этажей в доме"`
	ObjectBathroomsCount string     `json:"object_bathrooms_count" label:"Количество санузлов"`
	ObjectHasBalcony     YesNo      `json:"object_has_balcony" label:"Балкон"`
	ObjectRoomsList      string     `json:"object_rooms_list" label:"Список помещений"`
	ObjectResidentsCount string     `json:"object_residents_count" label:"Количество жильцов"`
	ObjectHasPets        YesNo      `json:"object_has_pets" label:"Домашние животные"`
	ObjectPetsNotes      string     `json:"object_pets_notes" label:"Животные, примечания"`

	ProjectScope              ProjectScope   `json:"project_scope" label:"Объём работ"`
	ProjectStyle              string         `json:"project_style" label:"Стиль"`
	ProjectRenovationType     RenovationType `json:"project_renovation_type" label:"Тип ремонта"`
	ProjectBudget             string         `json:"project_budget" label:"Бюджет ремонта"`
	ProjectDeadline           string         `json:"project_deadline" label:"Срок"`
	ProjectNotes              string         `json:"project_notes" label:"Примечания"`
	ProjectPrice              string         `json:"project_price" label:"Стоимость (текстом)"`
	ProjectPricePerSqm        string         `json:"project_price_per_sqm" label:"Ставка за м²"`
	ProjectPriceTotal         string         `json:"project_price_total" label:"Итоговая стоимость"`
	ProjectPaymentTerms       string         `json:"project_payment_terms" label:"Условия оплаты"`
	PaymentMethodCash         bool           `json:"payment_method_cash" label:"Оплата наличными"`
	PaymentMethodBankTransfer bool           `json:"payment_method_bank_transfer" label:"Оплата переводом"`
	PaymentMethodCard         bool           `json:"payment_method_card" label:"Оплата картой"`
	PaymentMethodSBP          bool           `json:"payment_method_sbp" label:"Оплата через СБП"`
	PaymentMethodOther        string         `json:"payment_method_other" label:"Другой способ оплаты"`

	ProjectRevisionsIncluded   string `json:"project_revisions_included" label:"Правки в стоимости"`
	ProjectRevisionExtraTerms  string `json:"project_revision_extra_terms" label:"Дополнительные правки"`
	ProjectAuthorSupervision   YesNo  `json:"project_author_supervision" label:"Авторский надзор"`
	ProjectSiteVisitsCount     string `json:"project_site_visits_count" label:"Количество выездов"`
	ProjectSiteVisitsPaidBy    Party  `json:"project_site_visits_paid_by" label:"Выезды оплачивает"`
	ProjectSiteVisitsPaidByDet string `json:"project_site_visits_paid_by_details" label:"Выезды, подробности"`
	ProjectSiteVisitsExpenses  string `json:"project_site_visits_expenses" label:"Расходы на выезды"`

	ProjectProcurementBuysPaidBy            Party  `json:"project_procurement_buys_paid_by" label:"Закупки оплачивает"`
	ProjectProcurementBuysDetails           string `json:"project_procurement_buys_details" label:"Закупки, подробности"`
	ProjectProcurementDeliveryAcceptanceBy  Party  `json:"project_procurement_delivery_acceptance_by" label:"Приёмку доставок ведёт"`
	ProjectProcurementDeliveryDetails       string `json:"project_procurement_delivery_acceptance_details" label:"Приёмка доставок, подробности"`
	ProjectProcurementLiftingAssemblyPaidBy Party  `json:"project_procurement_lifting_assembly_paid_by" label:"Подъём и сборку оплачивает"`
	ProjectProcurementLiftingDetails        string `json:"project_procurement_lifting_assembly_details" label:"Подъём и сборка, подробности"`
	ProjectProcurementStoragePaidBy         Party  `json:"project_procurement_storage_paid_by" label:"Хранение оплачивает"`
	ProjectProcurementStorageDetails        string `json:"project_procurement_storage_details" label:"Хранение, подробности"`

	ProjectApprovalSLA          string               `json:"project_approval_sla" label:"Срок согласования"`
	ProjectDeadlineShiftTerms   string               `json:"project_deadline_shift_terms" label:"Перенос сроков"`
	ProjectPenaltiesTerms       string               `json:"project_penalties_terms" label:"Штрафы"`
	ProjectHandoverFormat       string               `json:"project_handover_format" label:"Формат передачи результата"`
	ProjectCommunicationChannel CommunicationChannel `json:"project_communication_channel" label:"Канал связи"`
	ProjectCommunicationDetails string               `json:"project_communication_details" label:"Связь, подробности"`
	ProjectCommunicationRules   string               `json:"project_communication_rules" label:"Правила коммуникации"`

	DeliverableMeasurements     bool `json:"deliverable_measurements" label:"Обмерный план"`
	DeliverablePlanSolution     bool `json:"deliverable_plan_solution" label:"Планировочное решение"`
	DeliverableDemolitionPlan   bool `json:"deliverable_demolition_plan" label:"План демонтажа"`
	DeliverableConstructionPlan bool `json:"deliverable_construction_plan" label:"План монтажа перегородок"`
	DeliverableElectricPlan     bool `json:"deliverable_electric_plan" label:"План электрики (розетки, выключатели)"`
	DeliverablePlumbingPlan     bool `json:"deliverable_plumbing_plan" label:"План сантехники"`
	DeliverableLightingPlan     bool `json:"deliverable_lighting_plan" label:"План освещения"`
	DeliverableCeilingPlan      bool `json:"deliverable_ceiling_plan" label:"План потолков"`
	DeliverableFloorPlan        bool `json:"deliverable_floor_plan" label:"План напольных покрытий"`
	DeliverableFurniturePlan    bool `json:"deliverable_furniture_plan" label:"План расстановки мебели"`
	DeliverableFinishesSchedule bool `json:"deliverable_finishes_schedule" label:"Ведомость отделочных материалов"`
	DeliverableSpecification    bool `json:"deliverable_specification" label:"Спецификация мебели и оборудования"`
	Deliverable3DVisuals        bool `json:"deliverable_3d_visuals" label:"3D-визуализации"`
}

// NewRecord возвращает анкету с деловыми значениями по умолчанию.
func NewRecord() Record {
	return Record{
		CustomerStatus:              CustomerPerson,
		ObjectType:                  ObjectApartment,
		ObjectHasBalcony:            No,
		ObjectHasPets:               No,
		ProjectScope:                ScopeFull,
		PaymentMethodBankTransfer:   true,
		PaymentMethodCard:           true,
		PaymentMethodSBP:            true,
		ProjectAuthorSupervision:    No,
		ProjectSiteVisitsPaidBy:     PartyCustomer,
		ProjectCommunicationChannel: ChannelTelegram,

		ProjectProcurementBuysPaidBy:            PartyCustomer,
		ProjectProcurementDeliveryAcceptanceBy:  PartyCustomer,
		ProjectProcurementLiftingAssemblyPaidBy: PartyCustomer,
		ProjectProcurementStoragePaidBy:         PartyCustomer,

		DeliverableMeasurements:     true,
		DeliverablePlanSolution:     true,
		DeliverableDemolitionPlan:   true,
		DeliverableConstructionPlan: true,
		DeliverableElectricPlan:     true,
		DeliverablePlumbingPlan:     true,
		DeliverableLightingPlan:     true,
		DeliverableCeilingPlan:      true,
		DeliverableFloorPlan:        true,
		DeliverableFurniturePlan:    true,
		DeliverableFinishesSchedule: true,
		DeliverableSpecification:    true,
	}
}

// Deliverable - пункт каталога состава дизайн-проекта.
type Deliverable struct {
	Field string
	Label string
	get   func(r *Record) bool
}

// Checked сообщает, отмечен ли пункт в анкете.
func (d Deliverable) Checked(r *Record) bool { return d.get(r) }

// Deliverables - фиксированный каталог в порядке вывода в договоре.
// Подписи берутся из тегов label полей Record.
var Deliverables = []Deliverable{
	{Field: "deliverable_measurements", get: func(r *Record) bool { return r.DeliverableMeasurements }},
	{Field: "deliverable_plan_solution", get: func(r *Record) bool { return r.DeliverablePlanSolution }},
	{Field: "deliverable_demolition_plan", get: func(r *Record) bool { return r.DeliverableDemolitionPlan }},
	{Field: "deliverable_construction_plan", get: func(r *Record) bool { return r.DeliverableConstructionPlan }},
	{Field: "deliverable_electric_plan", get: func(r *Record) bool { return r.DeliverableElectricPlan }},
	{Field: "deliverable_plumbing_plan", get: func(r *Record) bool { return r.DeliverablePlumbingPlan }},
	{Field: "deliverable_lighting_plan", get: func(r *Record) bool { return r.DeliverableLightingPlan }},
	{Field: "deliverable_ceiling_plan", get: func(r *Record) bool { return r.DeliverableCeilingPlan }},
	{Field: "deliverable_floor_plan", get: func(r *Record) bool { return r.DeliverableFloorPlan }},
	{Field: "deliverable_furniture_plan", get: func(r *Record) bool { return r.DeliverableFurniturePlan }},
	{Field: "deliverable_finishes_schedule", get: func(r *Record) bool { return r.DeliverableFinishesSchedule }},
	{Field: "deliverable_specification", get: func(r *Record) bool { return r.DeliverableSpecification }},
	{Field: "deliverable_3d_visuals", get: func(r *Record) bool { return r.Deliverable3DVisuals }},
}
