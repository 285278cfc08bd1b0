package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliverables_LabelsMatchFields(t *testing.T) {
	for _, d := range Deliverables {
		info, ok := LookupField(d.Field)
		require.True(t, ok, d.Field)
		assert.Equal(t, FieldBool, info.Kind, d.Field)
		assert.NotEmpty(t, d.Label, d.Field)
		assert.Equal(t, info.Label, d.Label, d.Field)
	}

	electric, _ := LookupField("deliverable_electric_plan")
	assert.Equal(t, "План электрики (розетки, выключатели)", electric.Label)
}

func TestRecord_SetEnum(t *testing.T) {
	rec := NewRecord()

	assert.True(t, rec.SetEnum("object_type", "house"))
	assert.Equal(t, ObjectHouse, rec.ObjectType)

	assert.False(t, rec.SetEnum("object_type", "villa"))
	assert.False(t, rec.SetEnum("customer_fio", "house"))
	assert.Equal(t, ObjectHouse, rec.ObjectType)
	assert.True(t, rec.Valid())
}
