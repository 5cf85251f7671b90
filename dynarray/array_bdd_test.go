package dynarray_test

import (
	"slices"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynarr/dynarray"
)

var _ = Describe("Array", func() {
	var arr *dynarray.Array[string]

	BeforeEach(func() {
		arr = dynarray.New[string]()
	})

	Describe("growth", func() {
		It("doubles when an append fills the last slot", func() {
			for _, s := range []string{"a", "b", "c"} {
				Expect(arr.Add(s)).To(Succeed())
			}
			Expect(arr.Cap()).To(Equal(4))

			Expect(arr.Add("d")).To(Succeed())
			Expect(arr.Len()).To(Equal(4))
			Expect(arr.Cap()).To(Equal(8))
		})

		It("always leaves a free slot after an append", func() {
			for i := 0; i < 100; i++ {
				Expect(arr.Add("v")).To(Succeed())
				Expect(arr.Len()).To(BeNumerically("<", arr.Cap()))
			}
		})
	})

	Describe("removal", func() {
		BeforeEach(func() {
			for _, s := range []string{"a", "b", "c"} {
				Expect(arr.Add(s)).To(Succeed())
			}
		})

		It("closes the gap left by an interior element", func() {
			removed, err := arr.Remove("b")
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeTrue())
			Expect(slices.Collect(arr.All())).To(Equal([]string{"a", "c"}))
		})

		It("ignores values that are not present", func() {
			removed, err := arr.Remove("zz")
			Expect(err).NotTo(HaveOccurred())
			Expect(removed).To(BeFalse())
			Expect(arr.Len()).To(Equal(3))
		})

		It("hides the vacated slot from indexed reads", func() {
			_, _ = arr.Remove("c")
			_, err := arr.At(2)
			Expect(err).To(MatchError(dynarray.ErrOutOfBounds))
		})
	})

	Describe("empty array", func() {
		It("rejects First and Last", func() {
			_, err := arr.First()
			Expect(err).To(MatchError(dynarray.ErrEmpty))
			_, err = arr.Last()
			Expect(err).To(MatchError(dynarray.ErrOutOfBounds))
		})

		It("iterates nothing", func() {
			Expect(slices.Collect(arr.All())).To(BeEmpty())
		})
	})

	Describe("nil items", func() {
		It("are rejected for pointer elements", func() {
			ptrs := dynarray.New[*string]()
			Expect(ptrs.Add(nil)).To(MatchError(dynarray.ErrInvalidArgument))
			Expect(ptrs.Len()).To(BeZero())
		})
	})

	Describe("Iterator", func() {
		It("walks the live elements with their indices", func() {
			for _, s := range []string{"x", "y", "z"} {
				Expect(arr.Add(s)).To(Succeed())
			}

			it := arr.Iterator()
			var seen []string
			for it.Next() {
				Expect(it.Index()).To(Equal(len(seen)))
				seen = append(seen, it.Value())
			}
			Expect(seen).To(Equal([]string{"x", "y", "z"}))

			Expect(it.First()).To(BeTrue())
			Expect(it.Value()).To(Equal("x"))

			found := it.NextTo(func(_ int, v string) bool { return v == "z" })
			Expect(found).To(BeTrue())
			Expect(it.Index()).To(Equal(2))
			Expect(it.Next()).To(BeFalse())
		})

		It("reports nothing on an empty array", func() {
			Expect(arr.Iterator().First()).To(BeFalse())
		})
	})
})
