package wall_test

import (
	"github.com/arya-analytics/wall/pkg/wall"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Policy", func() {
	var sess *wall.Session

	// Three subjects, two objects, two competing firms. Object 0 belongs
	// to firm 0, object 1 to firm 1.
	BeforeEach(func() {
		sess = wall.New(3, 2, 2)
		Expect(sess.SetOwner(0, 0)).To(Succeed())
		Expect(sess.SetOwner(1, 1)).To(Succeed())
		Expect(sess.AddConflict(0, 1)).To(Succeed())
	})

	Describe("Read", func() {
		It("Should accept a read on an untouched object", func() {
			d, err := sess.Read(1, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
		})
		It("Should accept the same read twice in a row", func() {
			for i := 0; i < 2; i++ {
				d, err := sess.Read(2, 1)
				Expect(err).ToNot(HaveOccurred())
				Expect(d).To(Equal(wall.Accepted))
			}
		})
		It("Should refuse a read once a conflict-class-indexed subject has accessed the object", func() {
			// Subject 1's index sits in firm 0's conflict class, so after
			// subject 1 touches object 0 nobody else can read it.
			d, err := sess.Read(1, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
			d, err = sess.Read(2, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Refused))
		})
		It("Should refuse a re-read by a subject whose own index is in the conflict class", func() {
			// The scan tests subject indices against the owner's conflict
			// class of firms, so subject 1 blocks itself on firm 0's
			// objects once it has read one.
			d, err := sess.Read(1, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
			d, err = sess.Read(1, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Refused))
		})
		It("Should accept everything when no conflicts are declared", func() {
			open := wall.New(3, 2, 2)
			Expect(open.SetOwner(0, 0)).To(Succeed())
			Expect(open.SetOwner(1, 1)).To(Succeed())
			for s := 0; s < 3; s++ {
				for o := 0; o < 2; o++ {
					d, err := open.Read(wall.Subject(s), wall.Object(o))
					Expect(err).ToNot(HaveOccurred())
					Expect(d).To(Equal(wall.Accepted))
					d, err = open.Write(wall.Subject(s), wall.Object(o))
					Expect(err).ToNot(HaveOccurred())
					Expect(d).To(Equal(wall.Accepted))
				}
			}
		})
		It("Should return OutOfRange for a subject beyond the cardinality", func() {
			_, err := sess.Read(3, 0)
			Expect(errors.Is(err, wall.OutOfRange)).To(BeTrue())
		})
		It("Should return OutOfRange for a negative object", func() {
			_, err := sess.Read(0, -1)
			Expect(errors.Is(err, wall.OutOfRange)).To(BeTrue())
		})
		It("Should not mutate history on an out of range request", func() {
			_, err := sess.Read(3, 0)
			Expect(err).To(HaveOccurred())
			subjects, err := sess.SubjectsThatAccessed(0)
			Expect(err).ToNot(HaveOccurred())
			Expect(subjects).To(BeEmpty())
		})
	})

	Describe("Write", func() {
		It("Should refuse a write that would launder a competitor's data", func() {
			// Subject 1 reads firm 0's object, then tries to write into
			// firm 1's object.
			d, err := sess.Read(1, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
			d, err = sess.Write(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Refused))
		})
		It("Should accept a write when the subject holds no competing data", func() {
			d, err := sess.Write(0, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
		})
		It("Should refuse when the read rule refuses, leaving history unchanged", func() {
			d, err := sess.Read(1, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
			before, err := sess.SubjectsThatAccessed(0)
			Expect(err).ToNot(HaveOccurred())

			d, err = sess.Write(2, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Refused))

			after, err := sess.SubjectsThatAccessed(0)
			Expect(err).ToNot(HaveOccurred())
			Expect(after).To(Equal(before))
		})
		It("Should return OutOfRange without mutation for bad indices", func() {
			_, err := sess.Write(0, 5)
			Expect(errors.Is(err, wall.OutOfRange)).To(BeTrue())
			accessed, err := sess.ObjectsAccessedBy(0)
			Expect(err).ToNot(HaveOccurred())
			Expect(accessed).To(BeEmpty())
		})
	})

	Describe("Reset", func() {
		It("Should behave like a fresh session with the same registries", func() {
			d, err := sess.Read(1, 0)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
			d, err = sess.Write(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Refused))

			sess.Reset()

			// The laundering refusal depended entirely on history, so it
			// clears with the reset.
			d, err = sess.Write(1, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
		})
	})
})
