package seeders

// contractTemplate - образец шаблона, который кладётся в базу первой версией документа.
type contractTemplate struct {
	Title string
	Body  string
}

var contractTemplatesData = []contractTemplate{
	{
		Title: "Договор на разработку дизайн-проекта",
		Body: `ДОГОВОР № {{ contract.number }}
на разработку дизайн-проекта

г. {{ contract.city }}
{{ contract.date }}

{{ executor.name }}, именуемый(ая) далее «Исполнитель»,
и {{ customer.fio }}, именуемый(ая) далее «Заказчик»,
совместно именуемые «Стороны», заключили настоящий договор (далее «Договор») о нижеследующем.

1. ПРЕДМЕТ ДОГОВОРА
1.1. Исполнитель обязуется разработать дизайн-проект для объекта по адресу: {{ object.address }} (далее «Объект»),
а Заказчик обязуется принять результат работ и оплатить его на условиях Договора.
1.2. Характеристики Объекта:
{{ object.summary }}
1.3. Состав дизайн-проекта:
{{ project.deliverables }}

2. СРОКИ ВЫПОЛНЕНИЯ РАБОТ
2.1. Срок выполнения работ: {{ project.deadline }}.
2.2. Согласование материалов Заказчиком: {{ project.approval.sla }}.
2.3. Перенос сроков: {{ project.deadline.shift.terms }}.

3. СТОИМОСТЬ И ПОРЯДОК ОПЛАТЫ
3.1. Стоимость работ по Договору: {{ project.price.breakdown }}.
3.2. Порядок оплаты: {{ project.payment.terms }}.
3.3. Способы оплаты: {{ project.payment.methods }}.

4. ПРАВКИ И АВТОРСКИЙ НАДЗОР
4.1. В стоимость входит {{ project.revisions.included }} кругов правок. Дополнительные правки: {{ project.revisions.extra }}.
4.2. Авторский надзор: {{ project.author.supervision }}.
4.3. Выезды на объект: {{ project.site.visits.count }}, оплачивает {{ project.site.visits.paid_by }}.

5. КОМПЛЕКТАЦИЯ
5.1. Закупку материалов и мебели оплачивает {{ project.procurement.buys.paid_by }}.
5.2. Приёмку доставок осуществляет {{ project.procurement.delivery.acceptance_by }}.
5.3. Подъём и сборку оплачивает {{ project.procurement.lifting.assembly.paid_by }}.
5.4. Хранение оплачивает {{ project.procurement.storage.paid_by }}.

6. ПРИЁМКА РЕЗУЛЬТАТА
6.1. Результат работ передаётся Заказчику в формате: {{ project.handover.format }}.

7. ОТВЕТСТВЕННОСТЬ СТОРОН
7.1. {{ project.penalties.terms }}

8. ПОРЯДОК ВЗАИМОДЕЙСТВИЯ
{{ project.communication }}
{{ project.communication.rules }}

9. РЕКВИЗИТЫ СТОРОН

ИСПОЛНИТЕЛЬ:
{{ executor.requisites }}

ЗАКАЗЧИК:
{{ customer.requisites }}

Подписи:

_____________________ / Исполнитель /

_____________________ / {{ customer.fio.short }} /
`,
	},
	{
		Title: "Техническое задание на дизайн-проект",
		Body: `ТЕХНИЧЕСКОЕ ЗАДАНИЕ
к договору № {{ contract.number }} от {{ contract.date }}

Объект
{{ object.address.line }}
Тип объекта: {{ object.type }}
{{ object.area.line }}
{{ object.ceiling.height.line }}
Этаж: {{ object.floor.fraction }}
Помещения:
{{ object.rooms.list }}
Проживающих: {{ object.residents.count }}
Домашние животные: {{ object.pets }}

Задание
{{ project.brief }}
`,
	},
}
