package alloc

type Allocator interface {
	Alloc() (uint32, bool)
	Reserve(uint32)
	Free(uint32)
}
