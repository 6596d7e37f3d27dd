package prompt

import (
	"testing"

	"housing-empire-ai/internal/constant"
	"housing-empire-ai/internal/entity"
	"housing-empire-ai/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserInstruction(t *testing.T) {
	tests := []struct {
		name   string
		kind   entity.GenerationKind
		fields entity.GenerationFields
		want   string
	}{
		{
			name:   "analyze",
			kind:   entity.GenerationAnalyze,
			fields: entity.GenerationFields{Address: "12 Elm St, Tulsa OK"},
			want:   "/analyze 12 Elm St, Tulsa OK",
		},
		{
			name:   "script wrap",
			kind:   entity.GenerationScript,
			fields: entity.GenerationFields{DealType: "Wrap"},
			want:   "/script Wrap",
		},
		{
			name:   "script cash",
			kind:   entity.GenerationScript,
			fields: entity.GenerationFields{DealType: "Cash"},
			want:   "/script Cash",
		},
		{
			name:   "loi whole price",
			kind:   entity.GenerationLOI,
			fields: entity.GenerationFields{Structure: "SubTo", SellerName: "Jane Doe", Price: 100000},
			want:   "/loi SubTo\nSeller: Jane Doe\nPrice: $100000",
		},
		{
			name:   "loi fractional price",
			kind:   entity.GenerationLOI,
			fields: entity.GenerationFields{Structure: "Seller Finance", SellerName: "Al", Price: 1500.5},
			want:   "/loi Seller Finance\nSeller: Al\nPrice: $1500.5",
		},
		{
			name: "analyze ignores other fields",
			kind: entity.GenerationAnalyze,
			fields: entity.GenerationFields{
				Address:  "",
				DealType: "Cash",
			},
			want: "/analyze ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UserInstruction(tt.kind, tt.fields)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	fields := entity.GenerationFields{Structure: "Hybrid", SellerName: "Bo", Price: 42}
	for _, kind := range entity.AllGenerationKinds {
		first, err := Build(kind, fields)
		require.NoError(t, err)
		second, err := Build(kind, fields)
		require.NoError(t, err)
		assert.Equal(t, first, second, kind)
	}
}

func TestBuildIsInjectivePerKind(t *testing.T) {
	variants := map[entity.GenerationKind][]entity.GenerationFields{
		entity.GenerationAnalyze: {{Address: "1 A St"}, {Address: "2 B St"}},
		entity.GenerationScript:  {{DealType: "Wrap"}, {DealType: "Cash"}},
		entity.GenerationLOI: {
			{Structure: "SubTo", SellerName: "A", Price: 1},
			{Structure: "SubTo", SellerName: "A", Price: 2},
			{Structure: "SubTo", SellerName: "B", Price: 1},
			{Structure: "Wrap", SellerName: "A", Price: 1},
		},
	}

	for kind, fieldSets := range variants {
		seen := map[string]bool{}
		for _, f := range fieldSets {
			msgs, err := Build(kind, f)
			require.NoError(t, err)
			assert.False(t, seen[msgs[1].Content], "collision for %s: %q", kind, msgs[1].Content)
			seen[msgs[1].Content] = true
		}
	}
}

func TestBuildMessages(t *testing.T) {
	msgs, err := Build(entity.GenerationScript, entity.GenerationFields{DealType: "SubTo"})
	require.NoError(t, err)
	assert.Equal(t, []llm.Message{
		{Role: llm.RoleSystem, Content: constant.SystemPromptScript},
		{Role: llm.RoleUser, Content: "/script SubTo"},
	}, msgs)
}

func TestBuildUnknownKind(t *testing.T) {
	_, err := Build(entity.GenerationKind("underwrite"), entity.GenerationFields{})
	assert.Error(t, err)
	assert.Empty(t, Heading(entity.GenerationKind("underwrite")))
}
