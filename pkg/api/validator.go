package api

import "errors"

// Validator is implemented by payload DTOs that can check themselves.
type Validator interface {
	Validate() error
}

func (p StartPayload) Validate() error {
	switch p.Difficulty {
	case "", "easy", "normal", "hard":
		return nil
	}
	return errors.New("difficulty must be easy, normal or hard")
}

func (p AttachPayload) Validate() error {
	if p.ExpeditionID == "" {
		return errors.New("expeditionId is required")
	}
	return nil
}

func (p StepPayload) Validate() error {
	if p.Count < 0 || p.Count > 100 {
		return errors.New("count must be between 0 and 100")
	}
	return nil
}

func (p PathPayload) Validate() error {
	if p.ProcessID == "" {
		return errors.New("processId is required")
	}
	if p.X < 0 || p.Y < 0 {
		return errors.New("destination must be inside the grid")
	}
	return nil
}
