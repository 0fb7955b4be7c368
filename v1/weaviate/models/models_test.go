package models

import (
	"encoding/json"
	"testing"

	"github.com/go-openapi/strfmt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idA = strfmt.UUID("00000000-0000-0000-0000-000000000001")
	idB = strfmt.UUID("00000000-0000-0000-0000-000000000002")
)

func roundTrip[T any](t *testing.T, in T) T {
	t.Helper()
	data, err := json.Marshal(in)
	require.NoError(t, err)
	var out T
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestBuilderDefaults(t *testing.T) {
	t.Run("class", func(t *testing.T) {
		c := NewClass("Article").Build()
		assert.Equal(t, "Article", c.Class)
		assert.Equal(t, VectorIndexTypeHNSW, c.VectorIndexType)
		assert.Nil(t, c.ShardingConfig)
		assert.Nil(t, c.VectorIndexConfig)
	})

	t.Run("sharding", func(t *testing.T) {
		s := NewShardingConfig().WithDesiredCount(2).Build()
		assert.Equal(t, ShardingConfig{
			VirtualPerPhysical: 128,
			DesiredCount:       2,
			Key:                "_id",
			Strategy:           "hash",
			Function:           "murmur3",
		}, s)
	})

	t.Run("vector index", func(t *testing.T) {
		v := NewVectorIndexConfig().Build()
		assert.Equal(t, DistanceCosine, v.Distance)
		require.NotNil(t, v.PQ)
		assert.False(t, v.PQ.Enabled)
		assert.Equal(t, &PQEncoder{Type: PQEncoderKMeans, Distribution: PQDistributionLogNormal}, v.PQ.Encoder)
	})

	t.Run("pq encoder keeps explicit type", func(t *testing.T) {
		pq := NewPQConfig().WithEnabled(true).WithEncoder(PQEncoderTile, "").Build()
		assert.True(t, pq.Enabled)
		assert.Equal(t, PQEncoderTile, pq.Encoder.Type)
		assert.Equal(t, PQDistributionLogNormal, pq.Encoder.Distribution)
	})

	t.Run("inverted index", func(t *testing.T) {
		inv := NewInvertedIndexConfig().Build()
		assert.Equal(t, 60, inv.CleanupIntervalSeconds)
		assert.Equal(t, &BM25Config{B: 0.75, K1: 1.2}, inv.BM25)
		assert.Equal(t, "en", inv.Stopwords.Preset)
	})

	t.Run("replication and tenant", func(t *testing.T) {
		assert.Equal(t, 1, NewReplicationConfig(0).Factor)
		assert.Equal(t, TenantHot, NewTenant("t1").ActivityStatus)
	})

	t.Run("classification", func(t *testing.T) {
		r := NewClassification("Article").WithClassifyProperties("topic").Build()
		assert.Equal(t, ClassificationKNN, r.Type)
	})
}

func TestListSettersAppendInOrder(t *testing.T) {
	c := NewClass("Article").
		WithProperty(NewProperty("title", DataTypeText).Build()).
		WithProperties(NewProperty("body", DataTypeText).Build(), NewProperty("words", DataTypeInt).Build()).
		Build()
	names := make([]string, 0, len(c.Properties))
	for _, p := range c.Properties {
		names = append(names, p.Name)
	}
	assert.Equal(t, []string{"title", "body", "words"}, names)

	p := NewProperty("ref", "Author").WithDataType("Publisher").WithDataType("Editor").Build()
	assert.Equal(t, []string{"Author", "Publisher", "Editor"}, p.DataType)

	inv := NewInvertedIndexConfig().
		WithStopwordAdditions("a").
		WithStopwordAdditions("b", "c").
		WithStopwordRemovals("the").
		Build()
	assert.Equal(t, []string{"a", "b", "c"}, inv.Stopwords.Additions)
	assert.Equal(t, []string{"the"}, inv.Stopwords.Removals)

	params := NewObjectListParams().WithSort("title").WithSort("date").WithOrder("asc", "desc")
	assert.Equal(t, []string{"title", "date"}, params.Sort)
	assert.Equal(t, []string{"asc", "desc"}, params.Order)
}

func TestScalarSettersOverwrite(t *testing.T) {
	c := NewClass("Article").WithDescription("first").WithDescription("second").Build()
	assert.Equal(t, "second", c.Description)

	o := NewObject("Article").
		WithProperty("title", String("a")).
		WithProperty("title", String("b")).
		Build()
	assert.Len(t, o.Properties, 1)
	s, _ := o.Properties["title"].AsString()
	assert.Equal(t, "b", s)
}

func TestBuildersForkIndependently(t *testing.T) {
	base := NewClass("Article").WithProperty(NewProperty("title", DataTypeText).Build())
	a := base.WithProperty(NewProperty("a", DataTypeText).Build()).Build()
	b := base.WithProperty(NewProperty("b", DataTypeText).Build()).Build()

	require.Len(t, a.Properties, 2)
	require.Len(t, b.Properties, 2)
	assert.Equal(t, "a", a.Properties[1].Name)
	assert.Equal(t, "b", b.Properties[1].Name)
	assert.Len(t, base.Build().Properties, 1)
}

func TestClassRoundTrip(t *testing.T) {
	c := NewClass("Article").
		WithDescription("news").
		WithVectorizer(VectorizerNone).
		WithProperty(NewProperty("title", DataTypeText).
			WithTokenization(TokenizationWord).
			WithIndexFilterable(true).
			WithModuleConfig("text2vec-openai", ObjectValue(map[string]Value{"skip": Bool(true)})).
			Build()).
		WithVectorIndexConfig(NewVectorIndexConfig().WithEF(64).WithDynamicEF(100, 500, 8).Build()).
		WithInvertedIndexConfig(NewInvertedIndexConfig().WithStopwordAdditions("foo").Build()).
		WithShardingConfig(NewShardingConfig().Build()).
		WithReplicationConfig(NewReplicationConfig(3)).
		WithMultiTenancy(true).
		WithModuleConfig("generative-openai", ObjectValue(map[string]Value{"model": String("gpt-4")})).
		Build()

	assert.Equal(t, c, roundTrip(t, c))
}

func TestObjectRoundTrip(t *testing.T) {
	o := NewObject("Article").
		WithID(idA).
		WithProperty("title", String("Hello")).
		WithProperty("words", Int(42)).
		WithProperty("score", Float(0.25)).
		WithProperty("tags", Strings("a", "b")).
		WithProperty("missing", Null()).
		WithProperty("nested", ObjectValue(map[string]Value{"deep": Array(Bool(true), Int(1))})).
		WithVector([]float32{0.1, 0.2}).
		WithTenant("t1").
		Build()

	out := roundTrip(t, o)
	assert.Equal(t, o, out)

	words, ok := out.Properties["words"].AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), words)
}

func TestReferenceRoundTrip(t *testing.T) {
	r := NewReference("Article", idA, "hasAuthors", "Author", idB).WithTenant("t1")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"from": "weaviate://localhost/Article/00000000-0000-0000-0000-000000000001/hasAuthors",
		"to": "weaviate://localhost/Author/00000000-0000-0000-0000-000000000002",
		"tenant": "t1"
	}`, string(data))

	assert.Equal(t, r, roundTrip(t, r))
	assert.NoError(t, r.Validate())
}

func TestParseBeacon(t *testing.T) {
	class, id, err := ParseBeacon("weaviate://localhost/Author/" + idB.String())
	require.NoError(t, err)
	assert.Equal(t, "Author", class)
	assert.Equal(t, idB, id)

	class, id, err = ParseBeacon("weaviate://localhost/" + idB.String())
	require.NoError(t, err)
	assert.Empty(t, class)
	assert.Equal(t, idB, id)

	_, _, err = ParseBeacon("http://elsewhere/x")
	assert.Error(t, err)
}

func TestValueOfAndInterface(t *testing.T) {
	v, err := ValueOf(map[string]any{
		"n":    3,
		"f":    1.5,
		"s":    "x",
		"list": []any{true, nil},
	})
	require.NoError(t, err)
	assert.Equal(t, KindObject, v.Kind())
	assert.Equal(t, map[string]any{
		"n":    int64(3),
		"f":    1.5,
		"s":    "x",
		"list": []any{true, nil},
	}, v.Interface())

	_, err = ValueOf(struct{}{})
	assert.Error(t, err)
}

func TestValueKeepsNumberText(t *testing.T) {
	var v Value
	require.NoError(t, json.Unmarshal([]byte(`12345678901234567890`), &v))
	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, "12345678901234567890", string(data))

	_, ok := v.AsInt()
	assert.False(t, ok)
	f, ok := v.AsFloat()
	assert.True(t, ok)
	assert.InDelta(t, 1.2345678901234567e19, f, 1e4)
}

func TestObjectListParams(t *testing.T) {
	tests := []struct {
		name    string
		params  ObjectListParams
		wantErr string
	}{
		{"plain", NewObjectListParams().WithClass("Article").WithLimit(10).WithOffset(5), ""},
		{"cursor", NewObjectListParams().WithClass("Article").WithAfter(idA), ""},
		{"after with offset", NewObjectListParams().WithClass("Article").WithAfter(idA).WithOffset(1), "offset"},
		{"after with sort", NewObjectListParams().WithClass("Article").WithAfter(idA).WithSort("title"), "sort"},
		{"after without class", NewObjectListParams().WithAfter(idA), "class"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}

	q := NewObjectListParams().
		WithClass("Article").
		WithLimit(10).
		WithInclude(IncludeVector, IncludeClassification).
		WithSort("title", "date").
		WithOrder("asc", "desc").
		WithTenant("t1").
		Query()
	assert.Equal(t, "class=Article&include=vector%2Cclassification&limit=10&order=asc%2Cdesc&sort=title%2Cdate&tenant=t1", q.Encode())
}

func TestWhereJSON(t *testing.T) {
	w := And(
		WherePath("wordCount").GreaterThan(1000),
		Not(WherePath("tags").ContainsAny([]string{"a", "b"})),
	)
	require.NoError(t, w.Validate())

	data, err := json.Marshal(w)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"operator": "And",
		"operands": [
			{"operator": "GreaterThan", "path": ["wordCount"], "valueInt": 1000},
			{"operator": "Not", "operands": [
				{"operator": "ContainsAny", "path": ["tags"], "valueTextArray": ["a", "b"]}
			]}
		]
	}`, string(data))
}

func TestWhereGraphQL(t *testing.T) {
	w := Or(
		WherePath("title").Equal(`say "hi"`),
		WherePath("score").LessThanEqual(2.0),
		WherePath("location").WithinGeoRange(52.3, 4.8, 1000),
	)
	assert.Equal(t,
		`{operator: Or, operands: [`+
			`{operator: Equal, path: ["title"], valueText: "say \"hi\""}, `+
			`{operator: LessThanEqual, path: ["score"], valueNumber: 2.0}, `+
			`{operator: WithinGeoRange, path: ["location"], valueGeoRange: {geoCoordinates: {latitude: 52.3, longitude: 4.8}, distance: {max: 1000.0}}}`+
			`]}`,
		w.GraphQL())
}

func TestWhereValidate(t *testing.T) {
	assert.Error(t, WherePath("x").Equal(struct{}{}).Validate())
	assert.Error(t, And().Validate())
	assert.Error(t, WherePath().Equal("x").Validate())
	assert.Error(t, Where{}.Validate())
	assert.ErrorContains(t, And(WherePath("ok").Equal(1), WherePath("bad").Equal(map[int]int{})).Validate(), "operand 1")
}

func TestBackupRequestValidate(t *testing.T) {
	assert.NoError(t, NewBackupCreate("b1").WithInclude("Article").Validate())
	assert.Error(t, NewBackupCreate("").Validate())
	assert.Error(t, NewBackupCreate("b1").WithInclude("A").WithExclude("B").Validate())
	assert.Error(t, NewBackupRestore().WithInclude("A").WithExclude("B").Validate())

	assert.True(t, BackupFailed.Terminal())
	assert.False(t, BackupTransferred.Terminal())
	assert.True(t, ClassificationCompleted.Terminal())
	assert.False(t, ClassificationRunning.Terminal())
}

func TestPropertyIsReference(t *testing.T) {
	assert.False(t, NewProperty("title", DataTypeText).Build().IsReference())
	assert.True(t, NewProperty("author", "Author").Build().IsReference())
}
