package services

import (
	"strings"

	"contract-studio/internal/entities"
	"contract-studio/pkg/utils"
)

// ContractBlocks собирает многострочные блоки договора (реквизиты, сводки, перечни).
// Строка с пустым значением не выводится вовсе, пустая анкета даёт пустой блок.
type ContractBlocks struct {
	prices *PriceCalculator
}

func NewContractBlocks(prices *PriceCalculator) *ContractBlocks {
	return &ContractBlocks{prices: prices}
}

func labeled(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return label + " " + value
}

func block(lines ...string) string {
	return utils.JoinNonEmpty("\n", lines...)
}

// --- Стороны ---

func (b *ContractBlocks) CustomerContacts(r entities.Record) string {
	return block(
		labeled("Тел.:", utils.FormatPhone(r.CustomerPhone)),
		labeled("Email:", utils.FormatEmail(r.CustomerEmail)),
		labeled("Telegram:", utils.FormatTelegram(r.CustomerTelegram)),
		labeled("WhatsApp:", utils.FormatWhatsApp(r.CustomerWhatsApp)),
	)
}

func (b *ContractBlocks) ExecutorContacts(r entities.Record) string {
	return block(
		labeled("Тел.:", utils.FormatPhone(r.ExecutorPhone)),
		labeled("Email:", utils.FormatEmail(r.ExecutorEmail)),
		labeled("Telegram:", utils.FormatTelegram(r.ExecutorTelegram)),
	)
}

func (b *ContractBlocks) CustomerRequisites(r entities.Record) string {
	nameLabel := "ФИО:"
	if r.CustomerStatus == entities.CustomerCompany {
		nameLabel = "Наименование:"
	}
	return block(
		labeled(nameLabel, utils.NormalizeSpaces(r.CustomerFIO)),
		labeled("Статус:", r.CustomerStatus.Label()),
		labeled("ИНН:", utils.FormatINN(r.CustomerINN)),
		labeled("Адрес:", utils.NormalizeSpaces(r.CustomerAddress)),
		b.CustomerContacts(r),
	)
}

func (b *ContractBlocks) ExecutorRequisites(r entities.Record) string {
	return block(
		labeled("Наименование:", utils.NormalizeSpaces(r.ExecutorName)),
		labeled("ИНН:", utils.FormatINN(r.ExecutorINN)),
		labeled("Адрес:", utils.NormalizeSpaces(r.ExecutorAddress)),
		b.ExecutorContacts(r),
	)
}

// --- Объект ---

// ObjectAddress возвращает адрес объекта одной строкой; если общий адрес не заполнен,
// собирает его из частей.
func (b *ContractBlocks) ObjectAddress(r entities.Record) string {
	if addr := utils.NormalizeSpaces(r.ObjectAddress); addr != "" {
		return addr
	}
	return utils.JoinNonEmpty(", ",
		utils.NormalizeSpaces(r.ObjectCountry),
		utils.NormalizeSpaces(r.ObjectCity),
		prefixed("д. ", r.ObjectHouse),
		prefixed("подъезд ", r.ObjectEntrance),
		prefixed("кв. ", r.ObjectApartment),
	)
}

func prefixed(prefix, value string) string {
	v := utils.NormalizeSpaces(value)
	if v == "" {
		return ""
	}
	return prefix + v
}

// FloorFraction - "этаж/этажность": "3/9". Без этажа ничего не выводится.
func (b *ContractBlocks) FloorFraction(r entities.Record) string {
	floor := utils.NormalizeSpaces(r.ObjectFloor)
	if floor == "" {
		return ""
	}
	if total := utils.NormalizeSpaces(r.ObjectFloorsTotal); total != "" {
		return floor + "/" + total
	}
	return floor
}

func (b *ContractBlocks) ObjectSummary(r entities.Record) string {
	return block(
		labeled("Адрес:", b.ObjectAddress(r)),
		labeled("Тип объекта:", r.ObjectType.Label()),
		labeled("Комнат:", utils.NormalizeSpaces(r.ObjectRoomsCount)),
		labeled("Площадь:", utils.WithUnit(r.ObjectAreaSqm, "м²")),
		labeled("Высота потолков:", utils.WithUnit(r.ObjectCeilingHeightM, "м")),
		labeled("Этаж:", b.FloorFraction(r)),
		labeled("Санузлов:", utils.NormalizeSpaces(r.ObjectBathroomsCount)),
		labeled("Балкон:", r.ObjectHasBalcony.Label()),
	)
}

// --- Проект ---

// PriceTotal - итог из поля итоговой стоимости в денежном формате.
// Итог с единицами или словами ("200 тыс.") выводится как есть.
func (b *ContractBlocks) PriceTotal(r entities.Record) string {
	if v, ok := utils.ParseBareNumber(r.ProjectPriceTotal); ok {
		return utils.FormatCurrency(v)
	}
	return utils.NormalizeSpaces(r.ProjectPriceTotal)
}

// RatePerSqm - ставка за м² из отдельного поля или из текстовой цены.
func (b *ContractBlocks) RatePerSqm(r entities.Record) string {
	rate, ok := b.prices.Rate(r)
	if !ok {
		return ""
	}
	return utils.FormatCurrency(rate) + "/м²"
}

// Price - итог, а без него текстовая цена.
func (b *ContractBlocks) Price(r entities.Record) string {
	if total := b.PriceTotal(r); total != "" {
		return total
	}
	return utils.NormalizeSpaces(r.ProjectPrice)
}

// PriceWithBreakdown добавляет к цене расшифровку "ставка × площадь", когда её можно вычислить.
func (b *ContractBlocks) PriceWithBreakdown(r entities.Record) string {
	price := b.Price(r)
	if price == "" {
		return ""
	}
	rate := b.RatePerSqm(r)
	area := utils.WithUnit(r.ObjectAreaSqm, "м²")
	if _, ok := utils.ParseNumber(r.ObjectAreaSqm); !ok || rate == "" {
		return price
	}
	return price + " (" + rate + " × " + area + ")"
}

func (b *ContractBlocks) PaymentMethodsInline(r entities.Record) string {
	methods := make([]string, 0, 5)
	if r.PaymentMethodCash {
		methods = append(methods, "наличные")
	}
	if r.PaymentMethodBankTransfer {
		methods = append(methods, "безналичный перевод")
	}
	if r.PaymentMethodCard {
		methods = append(methods, "банковская карта")
	}
	if r.PaymentMethodSBP {
		methods = append(methods, "СБП")
	}
	if other := utils.NormalizeSpaces(r.PaymentMethodOther); other != "" {
		methods = append(methods, other)
	}
	return strings.Join(methods, ", ")
}

// PartyLine - "кто отвечает" плюс уточнение в скобках.
func (b *ContractBlocks) PartyLine(party entities.Party, details string) string {
	details = utils.NormalizeSpaces(details)
	label := party.Label()
	switch {
	case label != "" && details != "":
		return label + " (" + details + ")"
	case label != "":
		return label
	default:
		return details
	}
}

func (b *ContractBlocks) Communication(r entities.Record) string {
	return utils.JoinNonEmpty(", ",
		r.ProjectCommunicationChannel.Label(),
		utils.NormalizeSpaces(r.ProjectCommunicationDetails),
	)
}

func (b *ContractBlocks) ProjectBrief(r entities.Record) string {
	text := utils.NormalizeSpaces
	return block(
		labeled("Объём работ:", r.ProjectScope.Label()),
		labeled("Стиль:", text(r.ProjectStyle)),
		labeled("Тип ремонта:", r.ProjectRenovationType.Label()),
		labeled("Бюджет ремонта:", text(r.ProjectBudget)),
		labeled("Стоимость:", b.PriceWithBreakdown(r)),
		labeled("Условия оплаты:", text(r.ProjectPaymentTerms)),
		labeled("Способы оплаты:", b.PaymentMethodsInline(r)),
		labeled("Срок:", text(r.ProjectDeadline)),
		labeled("Правки в стоимости:", text(r.ProjectRevisionsIncluded)),
		labeled("Дополнительные правки:", text(r.ProjectRevisionExtraTerms)),
		labeled("Авторский надзор:", r.ProjectAuthorSupervision.Label()),
		labeled("Выезды на объект:", text(r.ProjectSiteVisitsCount)),
		labeled("Выезды оплачивает:", b.PartyLine(r.ProjectSiteVisitsPaidBy, r.ProjectSiteVisitsPaidByDet)),
		labeled("Расходы на выезды:", text(r.ProjectSiteVisitsExpenses)),
		labeled("Закупки оплачивает:", b.PartyLine(r.ProjectProcurementBuysPaidBy, r.ProjectProcurementBuysDetails)),
		labeled("Приёмку доставок ведёт:", b.PartyLine(r.ProjectProcurementDeliveryAcceptanceBy, r.ProjectProcurementDeliveryDetails)),
		labeled("Подъём и сборку оплачивает:", b.PartyLine(r.ProjectProcurementLiftingAssemblyPaidBy, r.ProjectProcurementLiftingDetails)),
		labeled("Хранение оплачивает:", b.PartyLine(r.ProjectProcurementStoragePaidBy, r.ProjectProcurementStorageDetails)),
		labeled("Коммуникация:", b.Communication(r)),
		labeled("Правила коммуникации:", text(r.ProjectCommunicationRules)),
		labeled("Согласование:", text(r.ProjectApprovalSLA)),
		labeled("Перенос сроков:", text(r.ProjectDeadlineShiftTerms)),
		labeled("Штрафы:", text(r.ProjectPenaltiesTerms)),
		labeled("Формат передачи:", text(r.ProjectHandoverFormat)),
		labeled("Примечания:", text(r.ProjectNotes)),
	)
}

// --- Состав проекта ---

func (b *ContractBlocks) checkedDeliverables(r entities.Record) []string {
	labels := make([]string, 0, len(entities.Deliverables))
	for _, d := range entities.Deliverables {
		if d.Checked(&r) {
			labels = append(labels, d.Label)
		}
	}
	return labels
}

// Deliverables - маркированный список отмеченных пунктов в порядке каталога.
func (b *ContractBlocks) Deliverables(r entities.Record) string {
	labels := b.checkedDeliverables(r)
	for i, l := range labels {
		labels[i] = "- " + l
	}
	return strings.Join(labels, "\n")
}

func (b *ContractBlocks) DeliverablesInline(r entities.Record) string {
	return strings.Join(b.checkedDeliverables(r), ", ")
}

// RoomsList - список помещений построчно.
func (b *ContractBlocks) RoomsList(r entities.Record) string {
	return strings.Join(utils.SplitList(r.ObjectRoomsList), "\n")
}

// Pets - "да" плюс примечание, если животные есть.
func (b *ContractBlocks) Pets(r entities.Record) string {
	if r.ObjectHasPets != entities.Yes {
		return r.ObjectHasPets.Label()
	}
	return utils.JoinNonEmpty(", ", r.ObjectHasPets.Label(), utils.NormalizeSpaces(r.ObjectPetsNotes))
}
