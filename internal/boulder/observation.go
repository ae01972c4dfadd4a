package boulder

// ObservationShape returns (channels, rows, cols) for GetObservation's
// flattened output.
func (s *State) ObservationShape() (channels, rows, cols int) {
	return int(NumVisibleCellType), s.Rows, s.Cols
}

// GetObservation projects the hidden grid to a one-hot channel-major
// tensor of length NumVisibleCellType*rows*cols: for each cell, the
// channel of its collapsed visible kind is set to 1, all others 0.
//
// The running-offset write pattern (channel*channelLength + i) mirrors the
// fixed-size one-hot encoding idiom used for agent feature vectors
// elsewhere in this codebase's lineage, adapted here to a spatial tensor
// instead of a flat feature vector.
func (s *State) GetObservation() []float32 {
	channelLength := s.Rows * s.Cols
	out := make([]float32, int(NumVisibleCellType)*channelLength)
	for i, kind := range s.Grid {
		visible := ElementOf(kind).VisibleType
		out[int(visible)*channelLength+i] = 1
	}
	return out
}
