package services

import (
	"sort"
	"strings"

	"contract-studio/internal/entities"
	"contract-studio/pkg/utils"
)

// resolveFunc вычисляет подстановку для одного ключа. Пустая строка - "нечего подставлять".
type resolveFunc func(r entities.Record) string

func text(get func(r entities.Record) string) resolveFunc {
	return func(r entities.Record) string { return utils.NormalizeSpaces(get(r)) }
}

func formatted(get func(r entities.Record) string, format func(string) string) resolveFunc {
	return func(r entities.Record) string { return format(get(r)) }
}

func withUnit(get func(r entities.Record) string, unit string) resolveFunc {
	return func(r entities.Record) string { return utils.WithUnit(get(r), unit) }
}

func inlineLine(label string, inner resolveFunc) resolveFunc {
	return func(r entities.Record) string { return labeled(label, inner(r)) }
}

func enumLabel(get func(r entities.Record) entities.Enum) resolveFunc {
	return func(r entities.Record) string { return get(r).Label() }
}

// NormalizePlaceholderKey приводит ключ к каноническому виду: нижний регистр, "_" -> ".".
func NormalizePlaceholderKey(key string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(key)), "_", ".")
}

// PlaceholderResolver - таблица "ключ -> стратегия", собирается один раз при создании.
type PlaceholderResolver struct {
	table map[string]resolveFunc
	keys  []string
}

func NewPlaceholderResolver(blocks *ContractBlocks) *PlaceholderResolver {
	p := &PlaceholderResolver{table: make(map[string]resolveFunc)}

	// Договор
	p.register("contract.number", text(func(r entities.Record) string { return r.ContractNumber }))
	p.register("contract.city", text(func(r entities.Record) string { return r.ContractCity }))
	p.register("contract.date", text(func(r entities.Record) string { return r.ContractDate }))

	// Заказчик
	p.register("customer.requisites", blocks.CustomerRequisites)
	p.register("customer.contacts", blocks.CustomerContacts)
	p.register("customer.fio", text(func(r entities.Record) string { return r.CustomerFIO }))
	p.register("customer.fio.short", formatted(func(r entities.Record) string { return r.CustomerFIO }, utils.ShortFIO))
	p.register("customer.status", enumLabel(func(r entities.Record) entities.Enum { return r.CustomerStatus }))
	p.register("customer.address", text(func(r entities.Record) string { return r.CustomerAddress }))
	p.register("customer.phone", formatted(func(r entities.Record) string { return r.CustomerPhone }, utils.FormatPhone))
	p.register("customer.email", formatted(func(r entities.Record) string { return r.CustomerEmail }, utils.FormatEmail))
	p.register("customer.inn", formatted(func(r entities.Record) string { return r.CustomerINN }, utils.FormatINN))
	p.register("customer.telegram", formatted(func(r entities.Record) string { return r.CustomerTelegram }, utils.FormatTelegram))
	p.register("customer.whatsapp", formatted(func(r entities.Record) string { return r.CustomerWhatsApp }, utils.FormatWhatsApp))

	// Исполнитель
	p.register("executor.requisites", blocks.ExecutorRequisites)
	p.register("executor.contacts", blocks.ExecutorContacts)
	p.register("executor.name", text(func(r entities.Record) string { return r.ExecutorName }))
	p.register("executor.address", text(func(r entities.Record) string { return r.ExecutorAddress }))
	p.register("executor.inn", formatted(func(r entities.Record) string { return r.ExecutorINN }, utils.FormatINN))
	p.register("executor.phone", formatted(func(r entities.Record) string { return r.ExecutorPhone }, utils.FormatPhone))
	p.register("executor.email", formatted(func(r entities.Record) string { return r.ExecutorEmail }, utils.FormatEmail))
	p.register("executor.telegram", formatted(func(r entities.Record) string { return r.ExecutorTelegram }, utils.FormatTelegram))

	// Объект
	p.register("object.summary", blocks.ObjectSummary)
	p.register("object.address", blocks.ObjectAddress)
	p.register("object.address.line", inlineLine("Адрес объекта:", blocks.ObjectAddress))
	p.register("object.country", text(func(r entities.Record) string { return r.ObjectCountry }))
	p.register("object.city", text(func(r entities.Record) string { return r.ObjectCity }))
	p.register("object.house", text(func(r entities.Record) string { return r.ObjectHouse }))
	p.register("object.entrance", text(func(r entities.Record) string { return r.ObjectEntrance }))
	p.register("object.apartment", text(func(r entities.Record) string { return r.ObjectApartment }))
	p.register("object.type", enumLabel(func(r entities.Record) entities.Enum { return r.ObjectType }))
	p.register("object.area.sqm", withUnit(func(r entities.Record) string { return r.ObjectAreaSqm }, "м²"))
	p.register("object.area.line", inlineLine("Площадь:", withUnit(func(r entities.Record) string { return r.ObjectAreaSqm }, "м²")))
	p.register("object.ceiling.height", withUnit(func(r entities.Record) string { return r.ObjectCeilingHeightM }, "м"))
	p.register("object.ceiling.height.line", inlineLine("Высота потолков:", withUnit(func(r entities.Record) string { return r.ObjectCeilingHeightM }, "м")))
	p.register("object.rooms.count", formatted(func(r entities.Record) string { return r.ObjectRoomsCount }, utils.NumericPassthrough))
	p.register("object.rooms.list", blocks.RoomsList)
	p.register("object.floor", text(func(r entities.Record) string { return r.ObjectFloor }))
	p.register("object.floors.total", text(func(r entities.Record) string { return r.ObjectFloorsTotal }))
	p.register("object.floor.fraction", blocks.FloorFraction)
	p.register("object.bathrooms.count", formatted(func(r entities.Record) string { return r.ObjectBathroomsCount }, utils.NumericPassthrough))
	p.register("object.balcony", enumLabel(func(r entities.Record) entities.Enum { return r.ObjectHasBalcony }))
	p.register("object.residents.count", formatted(func(r entities.Record) string { return r.ObjectResidentsCount }, utils.NumericPassthrough))
	p.register("object.pets", blocks.Pets)
	p.register("object.pets.notes", text(func(r entities.Record) string { return r.ObjectPetsNotes }))

	// Проект
	p.register("project.brief", blocks.ProjectBrief)
	p.register("project.scope", enumLabel(func(r entities.Record) entities.Enum { return r.ProjectScope }))
	p.register("project.style", text(func(r entities.Record) string { return r.ProjectStyle }))
	p.register("project.renovation.type", enumLabel(func(r entities.Record) entities.Enum { return r.ProjectRenovationType }))
	p.register("project.budget", text(func(r entities.Record) string { return r.ProjectBudget }))
	p.register("project.deadline", text(func(r entities.Record) string { return r.ProjectDeadline }))
	p.register("project.notes", text(func(r entities.Record) string { return r.ProjectNotes }))
	p.register("project.price", blocks.Price)
	p.register("project.price.total", blocks.PriceTotal)
	p.register("project.price.per_sqm", blocks.RatePerSqm)
	p.register("project.price.breakdown", blocks.PriceWithBreakdown)
	p.register("project.payment.terms", text(func(r entities.Record) string { return r.ProjectPaymentTerms }))
	p.register("project.payment.methods", blocks.PaymentMethodsInline)
	p.register("project.revisions.included", text(func(r entities.Record) string { return r.ProjectRevisionsIncluded }))
	p.register("project.revisions.extra", text(func(r entities.Record) string { return r.ProjectRevisionExtraTerms }))
	p.register("project.author.supervision", enumLabel(func(r entities.Record) entities.Enum { return r.ProjectAuthorSupervision }))
	p.register("project.site.visits.count", formatted(func(r entities.Record) string { return r.ProjectSiteVisitsCount }, utils.NumericPassthrough))
	p.register("project.site.visits.paid_by", func(r entities.Record) string {
		return blocks.PartyLine(r.ProjectSiteVisitsPaidBy, r.ProjectSiteVisitsPaidByDet)
	})
	p.register("project.site.visits.expenses", text(func(r entities.Record) string { return r.ProjectSiteVisitsExpenses }))
	p.register("project.procurement.buys.paid_by", func(r entities.Record) string {
		return blocks.PartyLine(r.ProjectProcurementBuysPaidBy, r.ProjectProcurementBuysDetails)
	})
	p.register("project.procurement.delivery.acceptance_by", func(r entities.Record) string {
		return blocks.PartyLine(r.ProjectProcurementDeliveryAcceptanceBy, r.ProjectProcurementDeliveryDetails)
	})
	p.register("project.procurement.lifting.assembly.paid_by", func(r entities.Record) string {
		return blocks.PartyLine(r.ProjectProcurementLiftingAssemblyPaidBy, r.ProjectProcurementLiftingDetails)
	})
	p.register("project.procurement.storage.paid_by", func(r entities.Record) string {
		return blocks.PartyLine(r.ProjectProcurementStoragePaidBy, r.ProjectProcurementStorageDetails)
	})
	p.register("project.communication", blocks.Communication)
	p.register("project.communication.channel", enumLabel(func(r entities.Record) entities.Enum { return r.ProjectCommunicationChannel }))
	p.register("project.communication.details", text(func(r entities.Record) string { return r.ProjectCommunicationDetails }))
	p.register("project.communication.rules", func(r entities.Record) string {
		return strings.Join(utils.SplitLines(r.ProjectCommunicationRules), "\n")
	})
	p.register("project.approval.sla", text(func(r entities.Record) string { return r.ProjectApprovalSLA }))
	p.register("project.deadline.shift.terms", text(func(r entities.Record) string { return r.ProjectDeadlineShiftTerms }))
	p.register("project.penalties.terms", text(func(r entities.Record) string { return r.ProjectPenaltiesTerms }))
	p.register("project.handover.format", text(func(r entities.Record) string { return r.ProjectHandoverFormat }))
	p.register("project.deliverables", blocks.Deliverables)
	p.register("project.deliverables.inline", blocks.DeliverablesInline)

	sort.Strings(p.keys)
	return p
}

func (p *PlaceholderResolver) register(key string, fn resolveFunc) {
	p.keys = append(p.keys, key)
	p.table[NormalizePlaceholderKey(key)] = fn
}

// Resolve возвращает подстановку для ключа или "", если ключ неизвестен или данных нет.
func (p *PlaceholderResolver) Resolve(key string, r entities.Record) string {
	fn, ok := p.table[NormalizePlaceholderKey(key)]
	if !ok {
		return ""
	}
	return fn(r)
}

// Known сообщает, есть ли ключ в таблице.
func (p *PlaceholderResolver) Known(key string) bool {
	_, ok := p.table[NormalizePlaceholderKey(key)]
	return ok
}

// Keys - каталог плейсхолдеров в том виде, в каком их стоит писать в шаблонах.
func (p *PlaceholderResolver) Keys() []string {
	out := make([]string, len(p.keys))
	copy(out, p.keys)
	return out
}
