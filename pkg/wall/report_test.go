package wall_test

import (
	"github.com/arya-analytics/wall/pkg/wall"
	"github.com/cockroachdb/errors"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Report", func() {
	var sess *wall.Session
	BeforeEach(func() {
		sess = wall.New(3, 3, 2)
		Expect(sess.SetOwner(0, 0)).To(Succeed())
		Expect(sess.SetOwner(1, 1)).To(Succeed())
		Expect(sess.SetOwner(2, 1)).To(Succeed())
	})

	It("Should list the objects a subject accessed with their owners", func() {
		d, err := sess.Read(2, 0)
		Expect(err).ToNot(HaveOccurred())
		Expect(d).To(Equal(wall.Accepted))
		d, err = sess.Read(2, 2)
		Expect(err).ToNot(HaveOccurred())
		Expect(d).To(Equal(wall.Accepted))
		accessed, err := sess.ObjectsAccessedBy(2)
		Expect(err).ToNot(HaveOccurred())
		Expect(accessed).To(Equal([]wall.AccessedObject{
			{Object: 0, Owner: 0},
			{Object: 2, Owner: 1},
		}))
	})
	It("Should list the subjects that accessed an object", func() {
		for _, s := range []wall.Subject{0, 2} {
			d, err := sess.Read(s, 1)
			Expect(err).ToNot(HaveOccurred())
			Expect(d).To(Equal(wall.Accepted))
		}
		subjects, err := sess.SubjectsThatAccessed(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(subjects).To(Equal([]wall.Subject{0, 2}))
	})
	It("Should list a firm's portfolio", func() {
		objects, err := sess.ObjectsOwnedBy(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(objects).To(Equal([]wall.Object{1, 2}))
	})
	It("Should not mutate history", func() {
		_, err := sess.ObjectsAccessedBy(1)
		Expect(err).ToNot(HaveOccurred())
		_, err = sess.SubjectsThatAccessed(0)
		Expect(err).ToNot(HaveOccurred())
		accessed, err := sess.ObjectsAccessedBy(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(accessed).To(BeEmpty())
	})
	It("Should return OutOfRange for invalid report targets", func() {
		_, err := sess.ObjectsAccessedBy(3)
		Expect(errors.Is(err, wall.OutOfRange)).To(BeTrue())
		_, err = sess.SubjectsThatAccessed(3)
		Expect(errors.Is(err, wall.OutOfRange)).To(BeTrue())
		_, err = sess.ObjectsOwnedBy(2)
		Expect(errors.Is(err, wall.OutOfRange)).To(BeTrue())
	})
})
