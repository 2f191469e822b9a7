package wall_test

import (
	"github.com/arya-analytics/wall/pkg/wall"
	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Registry", func() {
	var reg *wall.Registry
	BeforeEach(func() { reg = wall.NewRegistry() })

	It("Should retrieve a created session by its key", func() {
		key, sess := reg.Create(2, 2, 2)
		retrieved, err := reg.Retrieve(key)
		Expect(err).ToNot(HaveOccurred())
		Expect(retrieved).To(BeIdenticalTo(sess))
	})
	It("Should return NotFound for an unknown key", func() {
		_, err := reg.Retrieve(uuid.New())
		Expect(errors.Is(err, wall.NotFound)).To(BeTrue())
	})
	It("Should keep sessions independent of each other", func() {
		aKey, a := reg.Create(2, 1, 2)
		_, b := reg.Create(2, 1, 2)
		Expect(a.SetOwner(0, 0)).To(Succeed())
		Expect(b.SetOwner(0, 1)).To(Succeed())
		d, err := a.Read(0, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(d).To(Equal(wall.Accepted))

		subjects, err := b.SubjectsThatAccessed(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(subjects).To(BeEmpty())

		retrieved, err := reg.Retrieve(aKey)
		Expect(err).ToNot(HaveOccurred())
		Expect(retrieved).To(BeIdenticalTo(a))
	})
	It("Should not find a deleted session", func() {
		key, _ := reg.Create(1, 1, 1)
		reg.Delete(key)
		_, err := reg.Retrieve(key)
		Expect(errors.Is(err, wall.NotFound)).To(BeTrue())
	})
})

var _ = Describe("Conflict Graph", func() {
	var sess *wall.Session
	BeforeEach(func() { sess = wall.New(1, 1, 3) })

	It("Should record conflicts symmetrically", func() {
		Expect(sess.AddConflict(0, 2)).To(Succeed())
		a, err := sess.ConflictsWith(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(a).To(Equal([]wall.Firm{2}))
		b, err := sess.ConflictsWith(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(b).To(Equal([]wall.Firm{0}))
	})
	It("Should treat a repeated conflict as a no-op", func() {
		Expect(sess.AddConflict(0, 1)).To(Succeed())
		Expect(sess.AddConflict(0, 1)).To(Succeed())
		Expect(sess.AddConflict(1, 0)).To(Succeed())
		a, err := sess.ConflictsWith(0)
		Expect(err).ToNot(HaveOccurred())
		Expect(a).To(Equal([]wall.Firm{1}))
	})
	It("Should return an empty class for a firm with no competitors", func() {
		a, err := sess.ConflictsWith(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(a).To(BeEmpty())
	})
	It("Should return OutOfRange for an invalid firm", func() {
		Expect(errors.Is(sess.AddConflict(0, 3), wall.OutOfRange)).To(BeTrue())
		_, err := sess.ConflictsWith(-1)
		Expect(errors.Is(err, wall.OutOfRange)).To(BeTrue())
	})
})

var _ = Describe("Ownership", func() {
	var sess *wall.Session
	BeforeEach(func() { sess = wall.New(1, 2, 2) })

	It("Should let the last assignment win", func() {
		Expect(sess.SetOwner(0, 0)).To(Succeed())
		Expect(sess.SetOwner(0, 1)).To(Succeed())
		objects, err := sess.ObjectsOwnedBy(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(objects).To(Equal([]wall.Object{0}))
	})
	It("Should return OutOfRange for invalid indices", func() {
		Expect(errors.Is(sess.SetOwner(2, 0), wall.OutOfRange)).To(BeTrue())
		Expect(errors.Is(sess.SetOwner(0, 2), wall.OutOfRange)).To(BeTrue())
	})
})
