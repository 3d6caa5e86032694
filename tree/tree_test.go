package tree_test

import (
	"github.com/pulseboard/gqlview/parser"
	"github.com/pulseboard/gqlview/toolbar"
	"github.com/pulseboard/gqlview/tree"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

// rowByPath finds the row with the given path key, or nil.
func rowByPath(rows []tree.Row, key string) *tree.Row {
	for i := range rows {
		if rows[i].Path.String() == key {
			return &rows[i]
		}
	}
	return nil
}

var _ = Describe("Renderer", func() {
	Describe("row derivation", func() {
		It("emits rows depth-first with depths and child flags", func() {
			doc := parser.Parse(`query GetUser { user { name } } fragment F on T { f }`)
			renderer := tree.New(doc)
			rows := renderer.Rows(toolbar.State{}, "")

			Expect(rows).To(HaveLen(5))
			Expect(rows[0].Depth).To(Equal(0))
			Expect(rows[0].HasChildren).To(BeTrue())
			Expect(tree.SpanText(rows[0].Header)).To(Equal("query GetUser"))
			Expect(rows[1].Depth).To(Equal(1))
			Expect(tree.SpanText(rows[1].Header)).To(Equal("user"))
			Expect(rows[2].Depth).To(Equal(2))
			Expect(rows[2].HasChildren).To(BeFalse())
			Expect(rows[3].Depth).To(Equal(0))
			Expect(tree.SpanText(rows[3].Header)).To(Equal("fragment F on T"))
			Expect(rows[4].Depth).To(Equal(1))
		})

		It("renders headers with variables, arguments and directives", func() {
			doc := parser.Parse(`query Q($id: ID! = 1) { u: user(id: $id) @include(if: $x) }`)
			rows := tree.New(doc).Rows(toolbar.State{}, "")

			Expect(tree.SpanText(rows[0].Header)).To(Equal("query Q($id: ID! = 1)"))
			Expect(tree.SpanText(rows[1].Header)).To(Equal("u: user(id: $id) @include(if: $x)"))
		})

		It("tells fragment definitions and spreads apart by depth", func() {
			doc := parser.Parse(`{ ...UserFields } fragment UserFields on User { id }`)
			rows := tree.New(doc).Rows(toolbar.State{}, "")

			Expect(tree.SpanText(rows[1].Header)).To(Equal("...UserFields"))
			Expect(tree.SpanText(rows[2].Header)).To(Equal("fragment UserFields on User"))
		})

		It("renders nothing for an empty forest", func() {
			doc := parser.Parse(`definitely not graphql`)
			Expect(tree.New(doc).Rows(toolbar.State{}, "")).To(BeEmpty())
		})

		It("renders blank names without substituting a placeholder", func() {
			doc := parser.Parse(`{ foo:`)
			rows := tree.New(doc).Rows(toolbar.State{}, "")
			Expect(rows).To(HaveLen(2))
			Expect(tree.SpanText(rows[1].Header)).To(Equal("foo: "))
		})
	})

	Describe("expand and collapse state", func() {
		It("defaults a fresh tree to fully expanded", func() {
			doc := parser.Parse(`{ a { b } }`)
			rows := tree.New(doc).Rows(toolbar.State{}, "")
			Expect(rows).To(HaveLen(3))
		})

		It("hides the children of a manually collapsed node", func() {
			doc := parser.Parse(`{ a { b } c }`)
			renderer := tree.New(doc)
			st := toolbar.State{}

			renderer.Toggle(tree.Path{0, 0}, st)
			rows := renderer.Rows(st, "")

			a := rowByPath(rows, "0.0")
			Expect(a).NotTo(BeNil())
			Expect(a.Open).To(BeFalse())
			Expect(rowByPath(rows, "0.0.0")).To(BeNil())
			Expect(rowByPath(rows, "0.1")).NotTo(BeNil())
		})

		It("lets expand-all override a manual collapse", func() {
			doc := parser.Parse(`{ a { b } }`)
			renderer := tree.New(doc)
			st := toolbar.State{}

			renderer.Toggle(tree.Path{0, 0}, st)
			Expect(renderer.Rows(st, "")).To(HaveLen(2))

			st.ExpandAll()
			rows := renderer.Rows(st, "")
			Expect(rows).To(HaveLen(3))
			Expect(rowByPath(rows, "0.0").Open).To(BeTrue())
		})

		It("lets a later toggle override the generation default", func() {
			doc := parser.Parse(`{ a { b } }`)
			renderer := tree.New(doc)
			st := toolbar.State{}

			renderer.Toggle(tree.Path{0, 0}, st)
			st.ExpandAll()
			renderer.Toggle(tree.Path{0, 0}, st)

			rows := renderer.Rows(st, "")
			Expect(rowByPath(rows, "0.0").Open).To(BeFalse())
			Expect(rowByPath(rows, "0.0.0")).To(BeNil())
		})

		It("collapse-all closes everything, and one toggle reopens one node", func() {
			doc := parser.Parse(`{ a { b } } { c { d } }`)
			renderer := tree.New(doc)
			st := toolbar.State{}

			st.CollapseAll()
			rows := renderer.Rows(st, "")
			Expect(rows).To(HaveLen(2)) // only the two top-level operations

			renderer.Toggle(tree.Path{1}, st)
			rows = renderer.Rows(st, "")
			Expect(rowByPath(rows, "0").Open).To(BeFalse())
			Expect(rowByPath(rows, "1").Open).To(BeTrue())
			Expect(rowByPath(rows, "1.0")).NotTo(BeNil())
		})
	})

	Describe("search", func() {
		It("forces every ancestor of a match open, leaving collapsed siblings alone", func() {
			doc := parser.Parse(`{ alpha { beta { target } } other { child } }`)
			renderer := tree.New(doc)
			st := toolbar.State{}

			// Collapse both subtrees manually.
			renderer.Toggle(tree.Path{0, 0}, st)
			renderer.Toggle(tree.Path{0, 1}, st)
			Expect(renderer.Rows(st, "")).To(HaveLen(3))

			rows := renderer.Rows(st, "target")
			Expect(rowByPath(rows, "0").Open).To(BeTrue())
			Expect(rowByPath(rows, "0.0").Open).To(BeTrue())
			Expect(rowByPath(rows, "0.0.0").Open).To(BeTrue())
			Expect(rowByPath(rows, "0.0.0.0")).NotTo(BeNil())

			// The non-matching sibling keeps its collapsed toggle.
			other := rowByPath(rows, "0.1")
			Expect(other).NotTo(BeNil())
			Expect(other.Open).To(BeFalse())
			Expect(rowByPath(rows, "0.1.0")).To(BeNil())
		})

		It("reverts to the toggle-derived state when the term is cleared", func() {
			doc := parser.Parse(`{ alpha { target } }`)
			renderer := tree.New(doc)
			st := toolbar.State{}

			renderer.Toggle(tree.Path{0, 0}, st)
			Expect(renderer.Rows(st, "target")).To(HaveLen(3))
			Expect(renderer.Rows(st, "")).To(HaveLen(2))
		})

		It("highlights only the first occurrence, case-sensitively", func() {
			doc := parser.Parse(`{ banana }`)
			rows := tree.New(doc).Rows(toolbar.State{}, "an")

			var highlighted int
			for _, span := range rows[1].Header {
				if span.Highlight {
					highlighted++
					Expect(span.Text).To(Equal("an"))
				}
			}
			Expect(highlighted).To(Equal(1))
			Expect(tree.SpanText(rows[1].Header)).To(Equal("banana"))

			rows = tree.New(doc).Rows(toolbar.State{}, "BAN")
			for _, span := range rows[0].Header {
				Expect(span.Highlight).To(BeFalse())
			}
		})

		It("matches argument values and variable types", func() {
			doc := parser.Parse(`query Q($id: SpecialID) { user(id: $id) { hidden { secret } } }`)
			renderer := tree.New(doc)
			st := toolbar.State{}
			st.CollapseAll()

			rows := renderer.Rows(st, "SpecialID")
			Expect(rowByPath(rows, "0").Open).To(BeTrue())

			rows = renderer.Rows(st, "secret")
			Expect(rowByPath(rows, "0.0.0.0")).NotTo(BeNil())
		})

		It("does not match directive names", func() {
			doc := parser.Parse(`{ top { user @include(if: true) } }`)
			renderer := tree.New(doc)
			st := toolbar.State{}
			st.CollapseAll()

			rows := renderer.Rows(st, "include")
			Expect(rowByPath(rows, "0").Open).To(BeFalse())
		})
	})
})
